package store

import (
	"context"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/google/uuid"
)

// ContactUpdate describes a single atomic change to a contact. Nil fields are
// left untouched; FollowUp, when set, is appended to the follow-up log.
type ContactUpdate struct {
	Status   *string
	LeadType *string
	FollowUp *string
}

// IsEmpty reports whether the update would change nothing.
func (u ContactUpdate) IsEmpty() bool {
	return u.Status == nil && u.LeadType == nil && u.FollowUp == nil
}

// ContactStore persists contact-form leads.
type ContactStore interface {
	// Create saves a new contact.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetByID retrieves a contact.
	// Returns ErrContactNotFound if the contact does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)

	// List returns every contact, oldest first.
	List(ctx context.Context) ([]*domain.Contact, error)

	// ApplyUpdate applies update in one statement and returns the contact as stored afterwards.
	// Returns ErrContactNotFound if the contact does not exist.
	ApplyUpdate(ctx context.Context, id uuid.UUID, update ContactUpdate) (*domain.Contact, error)

	// Delete removes a contact.
	// Returns ErrContactNotFound if the contact does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
