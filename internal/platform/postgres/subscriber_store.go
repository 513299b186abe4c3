package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/store"
)

// PostgresSubscriberStore implements store.SubscriberStore.
type PostgresSubscriberStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSubscriberStore creates a PostgresSubscriberStore. If logger is nil, slog.Default() is used.
func NewPostgresSubscriberStore(db store.DBTX, logger *slog.Logger) *PostgresSubscriberStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSubscriberStore{
		db:     db,
		logger: logger.With(slog.String("component", "subscriber_store")),
	}
}

var _ store.SubscriberStore = (*PostgresSubscriberStore)(nil)

// Create implements store.SubscriberStore.Create.
func (s *PostgresSubscriberStore) Create(ctx context.Context, sub *domain.Subscriber) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO newsletter_subscribers (id, email, created_at) VALUES ($1, $2, $3)`,
		sub.ID, sub.Email, sub.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("subscriber email already exists")
			return store.ErrEmailExists
		}
		log.Error("failed to create subscriber",
			slog.String("error", err.Error()),
			slog.String("subscriber_id", sub.ID.String()))
		return wrapError("subscriber", "create", err)
	}
	return nil
}

// GetByEmail implements store.SubscriberStore.GetByEmail.
func (s *PostgresSubscriberStore) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var sub domain.Subscriber
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM newsletter_subscribers WHERE email = $1`, email).
		Scan(&sub.ID, &sub.Email, &sub.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSubscriberNotFound
		}
		log.Error("failed to get subscriber by email", slog.String("error", err.Error()))
		return nil, wrapError("subscriber", "get", err)
	}
	return &sub, nil
}

// List implements store.SubscriberStore.List.
func (s *PostgresSubscriberStore) List(ctx context.Context) ([]*domain.Subscriber, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, created_at FROM newsletter_subscribers ORDER BY created_at, id`)
	if err != nil {
		log.Error("failed to list subscribers", slog.String("error", err.Error()))
		return nil, wrapError("subscriber", "list", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	subs := make([]*domain.Subscriber, 0)
	for rows.Next() {
		var sub domain.Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber row: %w", err)
		}
		subs = append(subs, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriber rows: %w", err)
	}
	return subs, nil
}
