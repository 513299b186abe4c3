package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/ftfltech/careers-api/internal/domain"
)

// MockUploader implements service.ResumeUploader. By default it reads the
// file and returns URL.
type MockUploader struct {
	UploadFn func(ctx context.Context, filename string, r io.Reader) (string, error)

	URL       string
	Calls     int
	Filenames []string
}

// Upload implements service.ResumeUploader.
func (m *MockUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	m.Calls++
	m.Filenames = append(m.Filenames, filename)
	if m.UploadFn != nil {
		return m.UploadFn(ctx, filename, r)
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	if m.URL == "" {
		return "https://cdn.example.com/resumes/" + filename, nil
	}
	return m.URL, nil
}

// SentMail records one call to MockMailer.Send.
type SentMail struct {
	To      []string
	Subject string
	Body    string
}

// MockMailer implements service.Mailer.
type MockMailer struct {
	SendFn func(ctx context.Context, to []string, subject, body string) (string, error)

	Sent []SentMail
}

// Send implements service.Mailer.
func (m *MockMailer) Send(ctx context.Context, to []string, subject, body string) (string, error) {
	m.Sent = append(m.Sent, SentMail{To: append([]string(nil), to...), Subject: subject, Body: body})
	if m.SendFn != nil {
		return m.SendFn(ctx, to, subject, body)
	}
	return "<test-message@careers>", nil
}

// MockJobListCache implements service.JobListCache in memory, including the
// generation check on fills.
type MockJobListCache struct {
	mu            sync.Mutex
	jobs          []*domain.Job
	cached        bool
	generation    int64
	Hits          int
	Invalidations int
	RejectedFills int
}

// GetJobs implements service.JobListCache.
func (m *MockJobListCache) GetJobs(context.Context) ([]*domain.Job, int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.cached {
		return nil, m.generation, false
	}
	m.Hits++
	return m.jobs, m.generation, true
}

// SetJobs implements service.JobListCache.
func (m *MockJobListCache) SetJobs(_ context.Context, generation int64, jobs []*domain.Job) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if generation < 0 || generation != m.generation {
		m.RejectedFills++
		return false, nil
	}
	m.jobs = jobs
	m.cached = true
	return true, nil
}

// InvalidateJobs implements service.JobListCache.
func (m *MockJobListCache) InvalidateJobs(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = nil
	m.cached = false
	m.generation++
	m.Invalidations++
	return nil
}

// Cached reports whether the cache currently holds a list.
func (m *MockJobListCache) Cached() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cached
}
