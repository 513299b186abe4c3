package store

import (
	"context"

	"github.com/ftfltech/careers-api/internal/domain"
)

// OrderStore persists orders created from converted leads.
type OrderStore interface {
	// Create saves a new order.
	Create(ctx context.Context, order *domain.Order) error
}
