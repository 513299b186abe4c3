package service

import (
	"context"
	"log/slog"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/store"
	"github.com/google/uuid"
)

// StatusUpdate is the body of a lead status change. Empty strings mean "not
// provided"; a field cannot be cleared this way.
type StatusUpdate struct {
	Status    string
	LeadType  string
	FollowUp  string
	PackageID string
	UserID    string
}

// OrderDefaults supplies packageId/userId for orders when the update carries none.
type OrderDefaults struct {
	PackageID string
	UserID    string
}

// ContactService manages contact-form leads.
type ContactService interface {
	// Submit validates details and stores a new lead with status "new".
	Submit(ctx context.Context, details domain.ContactDetails) (*domain.Contact, error)

	// List returns every lead. It fails with ErrNoContacts when there are none.
	List(ctx context.Context) ([]*domain.Contact, error)

	// Get returns one lead.
	Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error)

	// Delete removes one lead.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateStatus runs the lead workflow. deleted is true when the lead was
	// marked non-converted and removed; the returned contact is nil then.
	UpdateStatus(ctx context.Context, id uuid.UUID, update StatusUpdate) (contact *domain.Contact, deleted bool, err error)
}

type contactServiceImpl struct {
	contacts store.ContactStore
	orders   store.OrderStore
	defaults OrderDefaults
	logger   *slog.Logger
}

// NewContactService creates a ContactService.
func NewContactService(
	contacts store.ContactStore,
	orders store.OrderStore,
	defaults OrderDefaults,
	logger *slog.Logger,
) (ContactService, error) {
	if contacts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "contacts store cannot be nil"}
	}
	if orders == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "orders store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &contactServiceImpl{
		contacts: contacts,
		orders:   orders,
		defaults: defaults,
		logger:   logger.With(slog.String("component", "contact_service")),
	}, nil
}

// Submit implements ContactService.
func (s *contactServiceImpl) Submit(ctx context.Context, details domain.ContactDetails) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	contact, err := domain.NewContact(details)
	if err != nil {
		return nil, err
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, NewServiceError("submit_contact", "failed to save contact", err)
	}

	log.Info("contact submitted", slog.String("contact_id", contact.ID.String()))
	return contact, nil
}

// List implements ContactService.
func (s *contactServiceImpl) List(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, NewServiceError("list_contacts", "failed to list contacts", err)
	}
	if len(contacts) == 0 {
		return nil, ErrNoContacts
	}
	return contacts, nil
}

// Get implements ContactService.
func (s *contactServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, NewServiceError("get_contact", "failed to load contact", err)
	}
	return contact, nil
}

// Delete implements ContactService.
func (s *contactServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.contacts.Delete(ctx, id); err != nil {
		return NewServiceError("delete_contact", "failed to delete contact", err)
	}

	log.Info("contact deleted", slog.String("contact_id", id.String()))
	return nil
}

// UpdateStatus implements ContactService.
//
// "converted" creates an order from the lead and leaves the lead's own status
// and lead type as they were. "non-converted" deletes the lead and nothing
// else is applied. Any other status, or none, sets status and lead type when
// they are non-empty. A non-empty follow-up is appended in every case except
// non-converted. All contact field changes go to the store as one update.
func (s *contactServiceImpl) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	update StatusUpdate,
) (*domain.Contact, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("contact_id", id.String()))

	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, false, NewServiceError("update_contact", "failed to load contact", err)
	}

	var changes store.ContactUpdate

	switch update.Status {
	case domain.ContactStatusConverted:
		order := domain.NewOrderFromContact(contact,
			firstNonEmpty(update.PackageID, s.defaults.PackageID),
			firstNonEmpty(update.UserID, s.defaults.UserID))
		if err := s.orders.Create(ctx, order); err != nil {
			return nil, false, NewServiceError("update_contact", "failed to create order", err)
		}
		log.Info("lead converted", slog.String("order_id", order.ID.String()))

	case domain.ContactStatusNonConverted:
		if err := s.contacts.Delete(ctx, id); err != nil {
			return nil, false, NewServiceError("update_contact", "failed to delete contact", err)
		}
		log.Info("lead marked non-converted and deleted")
		return nil, true, nil

	default:
		if update.Status != "" {
			changes.Status = &update.Status
		}
		if update.LeadType != "" {
			changes.LeadType = &update.LeadType
		}
	}

	if update.FollowUp != "" {
		changes.FollowUp = &update.FollowUp
	}

	updated, err := s.contacts.ApplyUpdate(ctx, id, changes)
	if err != nil {
		return nil, false, NewServiceError("update_contact", "failed to update contact", err)
	}

	log.Debug("contact updated",
		slog.String("status", updated.Status),
		slog.String("lead_type", updated.LeadType))
	return updated, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
