package service

import (
	"errors"
	"fmt"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/store"
)

// Sentinel errors returned by the services. The API layer maps each of them
// to a status code.
var (
	// ErrJobNotFound indicates the job id did not resolve.
	ErrJobNotFound = errors.New("job not found")

	// ErrApplicationNotFound indicates the application id did not resolve within its job.
	ErrApplicationNotFound = domain.ErrApplicationNotFound

	// ErrContactNotFound indicates the contact id did not resolve.
	ErrContactNotFound = errors.New("contact not found")

	// ErrNoContacts is returned when listing contacts finds none.
	ErrNoContacts = errors.New("no contacts found")

	// ErrSubscribersNotFound is returned when listing subscribers finds none.
	ErrSubscribersNotFound = errors.New("no subscribers found")

	// ErrNoSubscribers is returned by a broadcast with nobody to send to.
	// Unlike ErrSubscribersNotFound it is a client error, not a missing resource.
	ErrNoSubscribers = errors.New("no subscribers to send to")

	// ErrEmailExists indicates the email is already subscribed.
	ErrEmailExists = errors.New("email is already subscribed")

	// ErrResumeRequired indicates an application arrived without a resume file.
	ErrResumeRequired = domain.NewValidationError("resume", "file is required")

	// ErrUpstream indicates the blob store or the mail transport failed.
	ErrUpstream = errors.New("upstream service failed")
)

// ServiceError wraps unexpected errors with the operation that produced them.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "apply", "broadcast")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError translates store sentinels to service sentinels and returns
// known sentinels and validation errors unchanged. Anything else is wrapped.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrJobNotFound):
		return ErrJobNotFound
	case errors.Is(err, store.ErrContactNotFound):
		return ErrContactNotFound
	case errors.Is(err, store.ErrEmailExists):
		return ErrEmailExists
	case isSentinel(err), errors.Is(err, domain.ErrValidation):
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func isSentinel(err error) bool {
	for _, sentinel := range []error{
		ErrJobNotFound,
		ErrApplicationNotFound,
		ErrContactNotFound,
		ErrNoContacts,
		ErrSubscribersNotFound,
		ErrNoSubscribers,
		ErrEmailExists,
		ErrUpstream,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
