// Package dates provides helpers for the fixed-width ISO calendar dates
// (YYYY-MM-DD) used throughout the ledger. The fixed width makes plain
// string comparison equivalent to chronological comparison.
package dates

import (
	"regexp"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Today returns the current local date in ISO form.
func Today() string {
	return time.Now().Format(Layout)
}

// Valid reports whether s is a well-formed, real calendar date.
func Valid(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(Layout, s)
	return err == nil
}

// DisplayLabel renders an ISO date for list output: today and yesterday get
// relative labels, everything else passes through unchanged. Malformed
// input also passes through unchanged.
func DisplayLabel(iso string) string {
	return displayLabelAt(iso, time.Now())
}

func displayLabelAt(iso string, now time.Time) string {
	if !Valid(iso) {
		return iso
	}
	switch iso {
	case now.Format(Layout):
		return "今天"
	case now.AddDate(0, 0, -1).Format(Layout):
		return "昨天"
	}
	return iso
}
