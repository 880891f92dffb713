// Package errors holds the error values shared by the wordgram packages.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a required argument is missing or unusable.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTypeMismatch is returned when two values cannot be compared.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ValidationError describes which argument was rejected and why.
type ValidationError struct {
	Field   string // argument that failed validation
	Value   string // offending value, may be truncated
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid is shorthand for a ValidationError on field.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// TypeMismatchError reports the kind that was expected and what was received.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
