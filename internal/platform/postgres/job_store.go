package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/store"
	"github.com/google/uuid"
)

// PostgresJobStore implements store.JobStore. Each job, applications
// included, is a single JSONB document in the jobs table.
type PostgresJobStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresJobStore creates a PostgresJobStore. If logger is nil, slog.Default() is used.
func NewPostgresJobStore(db store.DBTX, logger *slog.Logger) *PostgresJobStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresJobStore{
		db:     db,
		logger: logger.With(slog.String("component", "job_store")),
	}
}

var _ store.JobStore = (*PostgresJobStore)(nil)

// Create implements store.JobStore.Create.
func (s *PostgresJobStore) Create(ctx context.Context, job *domain.Job) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	doc, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job document: %w", err)
	}

	query := `
		INSERT INTO jobs (id, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, query, job.ID, string(doc), job.CreatedAt, job.UpdatedAt); err != nil {
		log.Error("failed to create job",
			slog.String("error", err.Error()),
			slog.String("job_id", job.ID.String()))
		return wrapError("job", "create", err)
	}

	log.Debug("job created", slog.String("job_id", job.ID.String()))
	return nil
}

// GetByID implements store.JobStore.GetByID.
func (s *PostgresJobStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var doc []byte
	err := s.db.QueryRowContext(ctx, `SELECT document FROM jobs WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("job not found", slog.String("job_id", id.String()))
			return nil, store.ErrJobNotFound
		}
		log.Error("failed to get job by ID",
			slog.String("error", err.Error()),
			slog.String("job_id", id.String()))
		return nil, wrapError("job", "get", err)
	}

	return decodeJob(doc)
}

// List implements store.JobStore.List.
func (s *PostgresJobStore) List(ctx context.Context) ([]*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT document FROM jobs ORDER BY created_at, id`)
	if err != nil {
		log.Error("failed to list jobs", slog.String("error", err.Error()))
		return nil, wrapError("job", "list", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	jobs := make([]*domain.Job, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		job, err := decodeJob(doc)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job rows: %w", err)
	}

	log.Debug("jobs listed", slog.Int("count", len(jobs)))
	return jobs, nil
}

// Update implements store.JobStore.Update. The whole document is replaced.
func (s *PostgresJobStore) Update(ctx context.Context, job *domain.Job) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	doc, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job document: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET document = $1, updated_at = $2 WHERE id = $3`,
		string(doc), job.UpdatedAt, job.ID)
	if err != nil {
		log.Error("failed to update job",
			slog.String("error", err.Error()),
			slog.String("job_id", job.ID.String()))
		return wrapError("job", "update", err)
	}

	if err := CheckRowsAffected(result, store.ErrJobNotFound); err != nil {
		return err
	}

	log.Debug("job updated",
		slog.String("job_id", job.ID.String()),
		slog.Int("applications", len(job.Applications)))
	return nil
}

// Delete implements store.JobStore.Delete.
func (s *PostgresJobStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete job",
			slog.String("error", err.Error()),
			slog.String("job_id", id.String()))
		return wrapError("job", "delete", err)
	}

	if err := CheckRowsAffected(result, store.ErrJobNotFound); err != nil {
		return err
	}

	log.Debug("job deleted", slog.String("job_id", id.String()))
	return nil
}

func decodeJob(doc []byte) (*domain.Job, error) {
	var job domain.Job
	if err := json.Unmarshal(doc, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job document: %w", err)
	}
	return &job, nil
}
