package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/store"
	"github.com/google/uuid"
)

// Resume is an uploaded resume file as received from the client.
type Resume struct {
	Filename string
	// Size is the declared length in bytes, recorded in the application logs.
	Size     int64
	Content  io.Reader
}

// JobService manages job postings and the applications submitted to them.
type JobService interface {
	// Create validates and stores a new job built from draft.
	Create(ctx context.Context, draft domain.Job) (*domain.Job, error)

	// ListAll returns every job in insertion order.
	ListAll(ctx context.Context) ([]*domain.Job, error)

	// GetApplications returns the applications of one job.
	GetApplications(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error)

	// Apply uploads the resume and appends a new application to the job.
	// resume may be nil, which fails validation once the job is known to exist.
	Apply(ctx context.Context, jobID uuid.UUID, applicant domain.Application, resume *Resume) (*domain.Job, error)

	// Update merges patch into the job and saves it.
	Update(ctx context.Context, jobID uuid.UUID, patch domain.JobPatch) (*domain.Job, error)

	// Delete removes a job together with its applications.
	Delete(ctx context.Context, jobID uuid.UUID) error

	// DeleteApplication removes one application from a job.
	DeleteApplication(ctx context.Context, jobID, appID uuid.UUID) error
}

type jobServiceImpl struct {
	jobs     store.JobStore
	uploader ResumeUploader
	cache    JobListCache
	logger   *slog.Logger
}

// NewJobService creates a JobService. cache may be nil, in which case listing
// always reads from the store.
func NewJobService(
	jobs store.JobStore,
	uploader ResumeUploader,
	cache JobListCache,
	logger *slog.Logger,
) (JobService, error) {
	if jobs == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "jobs store cannot be nil"}
	}
	if uploader == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "uploader cannot be nil"}
	}
	if cache == nil {
		cache = NoopJobListCache{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &jobServiceImpl{
		jobs:     jobs,
		uploader: uploader,
		cache:    cache,
		logger:   logger.With(slog.String("component", "job_service")),
	}, nil
}

// Create implements JobService.
func (s *jobServiceImpl) Create(ctx context.Context, draft domain.Job) (*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	job, err := domain.NewJob(draft)
	if err != nil {
		log.Debug("job rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, NewServiceError("create_job", "failed to save job", err)
	}
	s.invalidate(ctx)

	log.Info("job created",
		slog.String("job_id", job.ID.String()),
		slog.String("title", job.Title))
	return job, nil
}

// ListAll implements JobService.
func (s *jobServiceImpl) ListAll(ctx context.Context) ([]*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cached, generation, ok := s.cache.GetJobs(ctx)
	if ok {
		log.Debug("job list served from cache", slog.Int("count", len(cached)))
		return cached, nil
	}

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, NewServiceError("list_jobs", "failed to list jobs", err)
	}

	stored, err := s.cache.SetJobs(ctx, generation, jobs)
	switch {
	case err != nil:
		log.Warn("failed to cache job list", slog.String("error", err.Error()))
	case !stored:
		log.Debug("job list changed while loading, not cached",
			slog.Int64("generation", generation))
	}
	return jobs, nil
}

// GetApplications implements JobService.
func (s *jobServiceImpl) GetApplications(ctx context.Context, jobID uuid.UUID) ([]domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, NewServiceError("get_applications", "failed to load job", err)
	}
	return job.Applications, nil
}

// Apply implements JobService. The checks run in a fixed order: applicant
// fields, job existence, resume presence, then the upload.
func (s *jobServiceImpl) Apply(
	ctx context.Context,
	jobID uuid.UUID,
	applicant domain.Application,
	resume *Resume,
) (*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("job_id", jobID.String()))

	if err := applicant.ValidateApplicant(); err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, NewServiceError("apply", "failed to load job", err)
	}

	if resume == nil || resume.Content == nil {
		return nil, ErrResumeRequired
	}

	url, err := s.uploader.Upload(ctx, resume.Filename, resume.Content)
	if err != nil {
		log.Error("resume upload failed",
			slog.String("error", err.Error()),
			slog.String("filename", resume.Filename),
			slog.Int64("resume_size", resume.Size))
		return nil, &ServiceError{Operation: "apply", Message: "failed to upload resume", Err: errors.Join(ErrUpstream, err)}
	}

	applicant.Resume = url
	app, err := job.AddApplication(applicant)
	if err != nil {
		return nil, err
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		// The blob is already stored; it is left in place.
		log.Error("application not saved after resume upload, resume is orphaned",
			slog.String("error", err.Error()),
			slog.String("resume_url", url),
			slog.String("application_id", app.ID.String()))
		return nil, NewServiceError("apply", "failed to save application", err)
	}
	s.invalidate(ctx)

	log.Info("application submitted",
		slog.String("application_id", app.ID.String()),
		slog.Int64("resume_size", resume.Size))
	return job, nil
}

// Update implements JobService. It is a read-modify-write of the whole
// document: two concurrent updates of the same job can lose one of them.
func (s *jobServiceImpl) Update(ctx context.Context, jobID uuid.UUID, patch domain.JobPatch) (*domain.Job, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, NewServiceError("update_job", "failed to load job", err)
	}

	job.ApplyPatch(patch)
	if err := job.Validate(); err != nil {
		return nil, err
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, NewServiceError("update_job", "failed to save job", err)
	}
	s.invalidate(ctx)

	log.Info("job updated", slog.String("job_id", jobID.String()))
	return job, nil
}

// Delete implements JobService.
func (s *jobServiceImpl) Delete(ctx context.Context, jobID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return NewServiceError("delete_job", "failed to delete job", err)
	}
	s.invalidate(ctx)

	log.Info("job deleted", slog.String("job_id", jobID.String()))
	return nil
}

// DeleteApplication implements JobService.
func (s *jobServiceImpl) DeleteApplication(ctx context.Context, jobID, appID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return NewServiceError("delete_application", "failed to load job", err)
	}

	if err := job.RemoveApplication(appID); err != nil {
		return err
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return NewServiceError("delete_application", "failed to save job", err)
	}
	s.invalidate(ctx)

	log.Info("application deleted",
		slog.String("job_id", jobID.String()),
		slog.String("application_id", appID.String()))
	return nil
}

// invalidate drops the cached job list. Failures are logged only; the entry
// still expires after its TTL.
func (s *jobServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateJobs(ctx); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to invalidate job list cache",
			slog.String("error", err.Error()))
	}
}
