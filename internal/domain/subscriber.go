package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter recipient. Emails are unique across subscribers.
type Subscriber struct {
	ID        uuid.UUID `json:"_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSubscriber validates email and creates a subscriber for it.
// Surrounding whitespace is trimmed; case is preserved.
func NewSubscriber(email string) (*Subscriber, error) {
	email = strings.TrimSpace(email)
	if err := required("email", email); err != nil {
		return nil, err
	}
	if !IsValidEmail(email) {
		return nil, NewValidationError("email", "is not a valid email address")
	}

	return &Subscriber{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}, nil
}
