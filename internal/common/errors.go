// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input validation errors. These reject the computation outright:
	// entitlement amounts are legally consequential, so bad inputs are
	// never silently clamped.
	ErrInvalidSalary  = errors.New("annual salary must be positive")
	ErrInvalidService = errors.New("invalid service duration")
	ErrInvalidProfile = errors.New("invalid employee profile")

	// Database errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

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

// IsInvalidInput reports whether err is one of the input-validation
// sentinels that must surface to the caller as a rejected computation.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidSalary) ||
		errors.Is(err, ErrInvalidService) ||
		errors.Is(err, ErrInvalidProfile)
}
