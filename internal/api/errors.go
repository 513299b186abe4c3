package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ftfltech/careers-api/internal/api/shared"
	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/service"
	"github.com/go-playground/validator/v10"
)

// MapErrorToStatusCode maps service and domain errors to HTTP status codes so
// internal error types never leak to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrJobNotFound),
		errors.Is(err, service.ErrApplicationNotFound),
		errors.Is(err, service.ErrContactNotFound),
		errors.Is(err, service.ErrNoContacts),
		errors.Is(err, service.ErrSubscribersNotFound):
		return http.StatusNotFound

	// Bad request errors. A duplicate subscription is a 400, not a 409, to
	// match what the frontend already handles.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrNoSubscribers):
		return http.StatusBadRequest

	// Upstream failures and everything else
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err. Validation
// messages name the offending field and are safe to return as-is.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()

	case errors.Is(err, service.ErrJobNotFound):
		return "Job not found"

	case errors.Is(err, service.ErrApplicationNotFound):
		return "Application not found"

	case errors.Is(err, service.ErrContactNotFound):
		return "Contact not found"

	case errors.Is(err, service.ErrNoContacts):
		return "No contacts found"

	case errors.Is(err, service.ErrSubscribersNotFound),
		errors.Is(err, service.ErrNoSubscribers):
		return "No subscribers found"

	case errors.Is(err, service.ErrEmailExists):
		return "This email is already subscribed"

	case errors.Is(err, service.ErrUpstream):
		return "An upstream service failed"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status and safe message for err. A non-empty
// override replaces the safe message; the full error is only logged.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, override string) {
	message := override
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), message, err)
}

// SanitizeValidationError turns validator output into a short message without
// Go struct or type names.
func SanitizeValidationError(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return "Validation error"
	}

	fe := vErrs[0]
	field := fe.Field()
	if len(field) > 0 {
		field = strings.ToLower(field[:1]) + field[1:]
	}
	return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fe.Tag()))
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
