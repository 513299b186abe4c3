package store

import (
	"context"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/google/uuid"
)

// JobStore persists jobs together with their embedded applications. A job is
// stored as a single document, so every call reads or writes it whole.
type JobStore interface {
	// Create saves a new job.
	Create(ctx context.Context, job *domain.Job) error

	// GetByID retrieves a job and its applications.
	// Returns ErrJobNotFound if the job does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)

	// List returns every job, oldest first. Returns an empty slice if there are none.
	List(ctx context.Context) ([]*domain.Job, error)

	// Update overwrites the stored document with job.
	// Returns ErrJobNotFound if the job does not exist.
	// The write is last-writer-wins: concurrent read-modify-write cycles on
	// the same job can lose an update.
	Update(ctx context.Context, job *domain.Job) error

	// Delete removes the job and every application it owns.
	// Returns ErrJobNotFound if the job does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
