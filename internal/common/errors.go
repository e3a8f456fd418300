// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Validation errors raised by the calculators and the parse boundary.
	ErrInvalidType = errors.New("invalid type")
	ErrOutOfRange  = errors.New("out of range")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

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

// ErrorKind returns a short label for the validation family an error belongs
// to. The intake loop prefixes rejection messages with it.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidType):
		return "TypeError"
	case errors.Is(err, ErrOutOfRange):
		return "ValueError"
	default:
		return "Error"
	}
}
