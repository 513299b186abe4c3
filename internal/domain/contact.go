package domain

import (
	"time"

	"github.com/google/uuid"
)

// Conventional lead statuses. Status is free text, so other values are stored as-is.
const (
	ContactStatusNew          = "new"
	ContactStatusConverted    = "converted"
	ContactStatusNonConverted = "non-converted"
)

// ContactDetails is what a visitor submits through the contact form.
type ContactDetails struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	City            string `json:"city"`
	Phone           string `json:"phone"`
	ServiceSelected string `json:"serviceSelected"`
	Message         string `json:"message"`
}

// Contact is a lead. FollowUp is an append-only log of free-text notes.
type Contact struct {
	ID uuid.UUID `json:"_id"`
	ContactDetails
	Status    string    `json:"status"`
	LeadType  string    `json:"leadType"`
	FollowUp  []string  `json:"followUp"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContact creates a lead in the "new" status with an empty follow-up log.
func NewContact(details ContactDetails) (*Contact, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	return &Contact{
		ID:             uuid.New(),
		ContactDetails: details,
		Status:         ContactStatusNew,
		LeadType:       "",
		FollowUp:       []string{},
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// Validate checks that every form field is present and the email is well formed.
func (d ContactDetails) Validate() error {
	checks := []struct {
		field string
		value string
	}{
		{"name", d.Name},
		{"email", d.Email},
		{"city", d.City},
		{"phone", d.Phone},
		{"serviceSelected", d.ServiceSelected},
		{"message", d.Message},
	}
	for _, c := range checks {
		if err := required(c.field, c.value); err != nil {
			return err
		}
	}

	if !IsValidEmail(d.Email) {
		return NewValidationError("email", "is not a valid email address")
	}
	return nil
}
