package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Every *ValidationError unwraps to it.
	ErrValidation = errors.New("validation failed")

	// ErrApplicationNotFound is returned when an application id does not
	// resolve within its job.
	ErrApplicationNotFound = errors.New("application not found")
)

// emailPattern is deliberately loose: something, an @, something, a dot, something.
var emailPattern = regexp.MustCompile(`.+@.+\..+`)

// ValidationError describes which field of an entity is invalid and why.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap lets callers match any ValidationError with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsValidEmail reports whether s has the basic local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func required(field, value string) error {
	if isBlank(value) {
		return NewValidationError(field, "is required")
	}
	return nil
}
