package postgres

import (
	"context"
	"log/slog"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/store"
)

// PostgresOrderStore implements store.OrderStore.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a PostgresOrderStore. If logger is nil, slog.Default() is used.
func NewPostgresOrderStore(db store.DBTX, logger *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOrderStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_store")),
	}
}

var _ store.OrderStore = (*PostgresOrderStore)(nil)

// Create implements store.OrderStore.Create.
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO orders (id, customer_name, customer_email, city, phone, service_selected,
			message, contact_id, package_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		order.ID,
		order.CustomerName,
		order.CustomerEmail,
		order.City,
		order.Phone,
		order.ServiceSelected,
		order.Message,
		order.ContactID,
		order.PackageID,
		order.UserID,
		order.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create order",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()),
			slog.String("contact_id", order.ContactID.String()))
		return wrapError("order", "create", err)
	}

	log.Info("order created",
		slog.String("order_id", order.ID.String()),
		slog.String("contact_id", order.ContactID.String()))
	return nil
}
