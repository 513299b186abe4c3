package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/store"
	"github.com/google/uuid"
)

const contactColumns = `id, name, email, city, phone, service_selected, message,
	status, lead_type, follow_up, created_at`

// PostgresContactStore implements store.ContactStore.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a PostgresContactStore. If logger is nil, slog.Default() is used.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

var _ store.ContactStore = (*PostgresContactStore)(nil)

// Create implements store.ContactStore.Create.
func (s *PostgresContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	followUp, err := json.Marshal(nonNil(contact.FollowUp))
	if err != nil {
		return fmt.Errorf("failed to encode follow-up log: %w", err)
	}

	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = s.db.ExecContext(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.City,
		contact.Phone,
		contact.ServiceSelected,
		contact.Message,
		contact.Status,
		contact.LeadType,
		string(followUp),
		contact.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return wrapError("contact", "create", err)
	}

	log.Debug("contact created", slog.String("contact_id", contact.ID.String()))
	return nil
}

// GetByID implements store.ContactStore.GetByID.
func (s *PostgresContactStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	contact, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found", slog.String("contact_id", id.String()))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact by ID",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return nil, wrapError("contact", "get", err)
	}
	return contact, nil
}

// List implements store.ContactStore.List.
func (s *PostgresContactStore) List(ctx context.Context) ([]*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at, id`)
	if err != nil {
		log.Error("failed to list contacts", slog.String("error", err.Error()))
		return nil, wrapError("contact", "list", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact rows: %w", err)
	}
	return contacts, nil
}

// ApplyUpdate implements store.ContactStore.ApplyUpdate. Field changes and the
// follow-up append happen in one UPDATE, so concurrent updates cannot drop
// each other's notes.
func (s *PostgresContactStore) ApplyUpdate(
	ctx context.Context,
	id uuid.UUID,
	update store.ContactUpdate,
) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	add := func(expr string, arg any) {
		args = append(args, arg)
		sets = append(sets, fmt.Sprintf(expr, len(args)))
	}
	if update.Status != nil {
		add("status = $%d", *update.Status)
	}
	if update.LeadType != nil {
		add("lead_type = $%d", *update.LeadType)
	}
	if update.FollowUp != nil {
		add("follow_up = follow_up || jsonb_build_array($%d::text)", *update.FollowUp)
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE contacts SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "),
		len(args),
		contactColumns,
	)

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found for update", slog.String("contact_id", id.String()))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return nil, wrapError("contact", "update", err)
	}

	log.Debug("contact updated",
		slog.String("contact_id", id.String()),
		slog.String("status", contact.Status),
		slog.Int("follow_ups", len(contact.FollowUp)))
	return contact, nil
}

// Delete implements store.ContactStore.Delete.
func (s *PostgresContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return wrapError("contact", "delete", err)
	}
	return CheckRowsAffected(result, store.ErrContactNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var (
		c        domain.Contact
		followUp []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.City,
		&c.Phone,
		&c.ServiceSelected,
		&c.Message,
		&c.Status,
		&c.LeadType,
		&followUp,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(followUp, &c.FollowUp); err != nil {
		return nil, fmt.Errorf("failed to decode follow-up log: %w", err)
	}
	c.FollowUp = nonNil(c.FollowUp)
	return &c, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
