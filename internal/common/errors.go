// Package common provides shared utilities and types used across the
// application.
package common

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks configuration values that fail validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
