package mocks

import (
	"context"
	"sync"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/store"
)

// MockOrderStore implements store.OrderStore for testing.
type MockOrderStore struct {
	CreateFn func(ctx context.Context, order *domain.Order) error

	mu     sync.Mutex
	Orders []*domain.Order
}

var _ store.OrderStore = (*MockOrderStore)(nil)

// Create implements store.OrderStore.
func (m *MockOrderStore) Create(ctx context.Context, order *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, order)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o := *order
	m.Orders = append(m.Orders, &o)
	return nil
}
