package template

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxNoteRunes is the display-length limit for template notes, counted in
// runes so CJK notes get the same budget as ASCII ones.
const MaxNoteRunes = 15

// Validation errors surfaced as inline field errors at the edge.
var (
	ErrEmptyNote   = errors.New("template note is empty")
	ErrNoteTooLong = errors.New("template note exceeds 15 characters")
	ErrBadAmount   = errors.New("template amount must be a positive integer")
)

// ValidateNew checks a prospective template's note and amount, returning
// the trimmed note on success. The store itself never validates; this runs
// before Add in the creation flow.
func ValidateNew(note string, amount int64) (string, error) {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return "", ErrEmptyNote
	}
	if utf8.RuneCountInString(trimmed) > MaxNoteRunes {
		return "", ErrNoteTooLong
	}
	if amount <= 0 {
		return "", ErrBadAmount
	}
	return trimmed, nil
}
