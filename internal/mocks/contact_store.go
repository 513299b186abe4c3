package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/store"
	"github.com/google/uuid"
)

// MockContactStore implements store.ContactStore for testing.
type MockContactStore struct {
	CreateFn      func(ctx context.Context, contact *domain.Contact) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	ListFn        func(ctx context.Context) ([]*domain.Contact, error)
	ApplyUpdateFn func(ctx context.Context, id uuid.UUID, update store.ContactUpdate) (*domain.Contact, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID) error

	mu       sync.Mutex
	Contacts map[uuid.UUID]*domain.Contact
	Updates  []store.ContactUpdate
}

var _ store.ContactStore = (*MockContactStore)(nil)

// NewMockContactStore creates an empty MockContactStore.
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{Contacts: make(map[uuid.UUID]*domain.Contact)}
}

// Create implements store.ContactStore.
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Contacts[contact.ID] = copyContact(contact)
	return nil
}

// GetByID implements store.ContactStore.
func (m *MockContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	contact, ok := m.Contacts[id]
	if !ok {
		return nil, store.ErrContactNotFound
	}
	return copyContact(contact), nil
}

// List implements store.ContactStore, ordered by creation time.
func (m *MockContactStore) List(ctx context.Context) ([]*domain.Contact, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	contacts := make([]*domain.Contact, 0, len(m.Contacts))
	for _, c := range m.Contacts {
		contacts = append(contacts, copyContact(c))
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.Before(contacts[j].CreatedAt)
	})
	return contacts, nil
}

// ApplyUpdate implements store.ContactStore. Every call is recorded in Updates.
func (m *MockContactStore) ApplyUpdate(
	ctx context.Context,
	id uuid.UUID,
	update store.ContactUpdate,
) (*domain.Contact, error) {
	if m.ApplyUpdateFn != nil {
		return m.ApplyUpdateFn(ctx, id, update)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Updates = append(m.Updates, update)

	contact, ok := m.Contacts[id]
	if !ok {
		return nil, store.ErrContactNotFound
	}
	if update.Status != nil {
		contact.Status = *update.Status
	}
	if update.LeadType != nil {
		contact.LeadType = *update.LeadType
	}
	if update.FollowUp != nil {
		contact.FollowUp = append(contact.FollowUp, *update.FollowUp)
	}
	return copyContact(contact), nil
}

// Delete implements store.ContactStore.
func (m *MockContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Contacts[id]; !ok {
		return store.ErrContactNotFound
	}
	delete(m.Contacts, id)
	return nil
}

func copyContact(c *domain.Contact) *domain.Contact {
	out := *c
	out.FollowUp = append([]string{}, c.FollowUp...)
	return &out
}
