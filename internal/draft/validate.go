package draft

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/yuhsinc/pocket-ledger/internal/dates"
	"github.com/yuhsinc/pocket-ledger/internal/model"
)

// MaxNoteRunes is the display-length limit for entry notes.
const MaxNoteRunes = 15

// Submit-time validation errors, surfaced as inline field errors.
var (
	ErrEmptyNote   = errors.New("note is empty")
	ErrNoteTooLong = errors.New("note exceeds 15 characters")
	ErrBadAmount   = errors.New("amount must be positive")
	ErrBadMode     = errors.New("mode must be expense or income")
	ErrBadDate     = errors.New("date must be YYYY-MM-DD")
	ErrNoCategory  = errors.New("category is required")
)

// ValidateForCommit checks the policy a draft must satisfy before it may
// become a transaction. The stores themselves accept whatever they are
// given; this is the edge where bad input is rejected without mutating
// any state.
func ValidateForCommit(d model.Draft) error {
	if !d.Mode.Valid() {
		return ErrBadMode
	}
	note := strings.TrimSpace(d.Note)
	if note == "" {
		return ErrEmptyNote
	}
	if utf8.RuneCountInString(note) > MaxNoteRunes {
		return ErrNoteTooLong
	}
	if d.Amount <= 0 {
		return ErrBadAmount
	}
	if !dates.Valid(d.Date) {
		return ErrBadDate
	}
	if d.CategoryID == "" {
		return ErrNoCategory
	}
	return nil
}
