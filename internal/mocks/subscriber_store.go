package mocks

import (
	"context"
	"sync"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/store"
)

// MockSubscriberStore implements store.SubscriberStore for testing.
type MockSubscriberStore struct {
	CreateFn     func(ctx context.Context, sub *domain.Subscriber) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.Subscriber, error)
	ListFn       func(ctx context.Context) ([]*domain.Subscriber, error)

	mu          sync.Mutex
	Subscribers []*domain.Subscriber
}

var _ store.SubscriberStore = (*MockSubscriberStore)(nil)

// Create implements store.SubscriberStore. Duplicate emails fail with store.ErrEmailExists.
func (m *MockSubscriberStore) Create(ctx context.Context, sub *domain.Subscriber) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, sub)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.Subscribers {
		if existing.Email == sub.Email {
			return store.ErrEmailExists
		}
	}
	s := *sub
	m.Subscribers = append(m.Subscribers, &s)
	return nil
}

// GetByEmail implements store.SubscriberStore.
func (m *MockSubscriberStore) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.Subscribers {
		if existing.Email == email {
			s := *existing
			return &s, nil
		}
	}
	return nil, store.ErrSubscriberNotFound
}

// List implements store.SubscriberStore in insertion order.
func (m *MockSubscriberStore) List(ctx context.Context) ([]*domain.Subscriber, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Subscriber, len(m.Subscribers))
	for i, sub := range m.Subscribers {
		s := *sub
		out[i] = &s
	}
	return out, nil
}
