package service

import (
	"context"
	"io"

	"github.com/ftfltech/careers-api/internal/domain"
)

// ResumeUploader stores a resume file and returns a durable URL for it.
type ResumeUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Mailer sends one plain-text message to every recipient and returns its Message-ID.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) (string, error)
}

// JobListCache caches the result of listing all jobs.
//
// Every invalidation advances a generation. GetJobs reports the generation it
// observed, and SetJobs only stores a list loaded under that same generation,
// so a listing that raced with a write never repopulates the cache. A
// negative generation means it could not be read and SetJobs stores nothing.
type JobListCache interface {
	GetJobs(ctx context.Context) (jobs []*domain.Job, generation int64, ok bool)
	SetJobs(ctx context.Context, generation int64, jobs []*domain.Job) (stored bool, err error)
	InvalidateJobs(ctx context.Context) error
}

// NoopJobListCache never holds anything. It is used when no cache is configured.
type NoopJobListCache struct{}

func (NoopJobListCache) GetJobs(context.Context) ([]*domain.Job, int64, bool) { return nil, 0, false }

// SetJobs discards jobs and reports success.
func (NoopJobListCache) SetJobs(context.Context, int64, []*domain.Job) (bool, error) { return true, nil }

func (NoopJobListCache) InvalidateJobs(context.Context) error { return nil }
