package mocks

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/store"
	"github.com/google/uuid"
)

// MockJobStore implements store.JobStore for testing.
type MockJobStore struct {
	CreateFn  func(ctx context.Context, job *domain.Job) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListFn    func(ctx context.Context) ([]*domain.Job, error)
	UpdateFn  func(ctx context.Context, job *domain.Job) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	mu          sync.Mutex
	Jobs        map[uuid.UUID]*domain.Job
	UpdateCalls int
}

var _ store.JobStore = (*MockJobStore)(nil)

// NewMockJobStore creates an empty MockJobStore.
func NewMockJobStore() *MockJobStore {
	return &MockJobStore{Jobs: make(map[uuid.UUID]*domain.Job)}
}

// Seed stores copies of jobs directly.
func (m *MockJobStore) Seed(jobs ...*domain.Job) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, job := range jobs {
		m.Jobs[job.ID] = copyJob(job)
	}
}

// Create implements store.JobStore.
func (m *MockJobStore) Create(ctx context.Context, job *domain.Job) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, job)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Jobs[job.ID] = copyJob(job)
	return nil
}

// GetByID implements store.JobStore.
func (m *MockJobStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.Jobs[id]
	if !ok {
		return nil, store.ErrJobNotFound
	}
	return copyJob(job), nil
}

// List implements store.JobStore, ordered by creation time.
func (m *MockJobStore) List(ctx context.Context) ([]*domain.Job, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	jobs := make([]*domain.Job, 0, len(m.Jobs))
	for _, job := range m.Jobs {
		jobs = append(jobs, copyJob(job))
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID.String() < jobs[j].ID.String()
		}
		return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
	})
	return jobs, nil
}

// Update implements store.JobStore.
func (m *MockJobStore) Update(ctx context.Context, job *domain.Job) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, job)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if _, ok := m.Jobs[job.ID]; !ok {
		return store.ErrJobNotFound
	}
	m.Jobs[job.ID] = copyJob(job)
	return nil
}

// Delete implements store.JobStore.
func (m *MockJobStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Jobs[id]; !ok {
		return store.ErrJobNotFound
	}
	delete(m.Jobs, id)
	return nil
}

// Stored returns a copy of the job as currently stored, or nil.
func (m *MockJobStore) Stored(id uuid.UUID) *domain.Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.Jobs[id]
	if !ok {
		return nil
	}
	return copyJob(job)
}

// copyJob round-trips through JSON, the same path a stored document takes.
func copyJob(job *domain.Job) *domain.Job {
	data, err := json.Marshal(job)
	if err != nil {
		panic(err)
	}
	var out domain.Job
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}
