package store

import (
	"context"

	"github.com/ftfltech/careers-api/internal/domain"
)

// SubscriberStore persists newsletter subscribers. Emails are unique.
type SubscriberStore interface {
	// Create saves a new subscriber.
	// Returns ErrEmailExists if the email is already subscribed.
	Create(ctx context.Context, subscriber *domain.Subscriber) error

	// GetByEmail looks a subscriber up by exact email.
	// Returns ErrSubscriberNotFound if nobody is subscribed with it.
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)

	// List returns every subscriber, oldest first.
	List(ctx context.Context) ([]*domain.Subscriber, error)
}
