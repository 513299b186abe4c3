package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ftfltech/careers-api/internal/api/shared"
	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/platform/logger"
	"github.com/ftfltech/careers-api/internal/service"
)

const (
	// MaxResumeSize is the largest resume file accepted by the apply route.
	MaxResumeSize = 10 << 20

	// maxApplyBodySize leaves room for the form fields and multipart framing
	// around a resume of MaxResumeSize.
	maxApplyBodySize = MaxResumeSize + 1<<20

	// resumeFormField is the multipart field carrying the resume file.
	resumeFormField = "resume"
)

// JobHandler handles job posting and application requests.
type JobHandler struct {
	jobs   service.JobService
	logger *slog.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs service.JobService, logger *slog.Logger) *JobHandler {
	if jobs == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("job service cannot be nil for JobHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for JobHandler")
	}

	return &JobHandler{
		jobs:   jobs,
		logger: logger.With(slog.String("component", "job_handler")),
	}
}

// CreateJob handles POST /api/jobs/post-job.
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	job, err := h.jobs.Create(r.Context(), req.ToDraft())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, JobCreatedResponse{
		Message: "Job posted successfully!",
		Job:     job,
	})
}

// ListJobs handles GET /api/jobs/all-jobs.
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, JobListResponse{Success: true, Jobs: jobs})
}

// GetApplications handles GET /api/jobs/applications/{jobId}.
func (h *JobHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathUUID(w, r, "jobId", "Job not found")
	if !ok {
		return
	}

	apps, err := h.jobs.GetApplications(r.Context(), jobID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ApplicationListResponse{Success: true, Applications: apps})
}

// Apply handles POST /api/jobs/apply/{jobId}. The body is multipart form data
// with the applicant fields and the resume file. URL-encoded fields are read
// too, so such a body fails on the missing resume rather than the fields.
func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	jobID, ok := pathUUID(w, r, "jobId", "Job not found.")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxApplyBodySize)
	if err := r.ParseMultipartForm(MaxResumeSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Resume file must not exceed 10 MB.", err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid form data.", err)
		return
	}
	if r.MultipartForm != nil {
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Warn("failed to remove multipart temp files", slog.String("error", err.Error()))
			}
		}()
	}

	applicant := domain.Application{
		FullName:              r.PostFormValue("fullName"),
		MobileNumber:          r.PostFormValue("mobileNumber"),
		Email:                 r.PostFormValue("email"),
		WorkplaceType:         r.PostFormValue("workplaceType"),
		EmploymentType:        r.PostFormValue("employmentType"),
		JobLocation:           r.PostFormValue("jobLocation"),
		BackgroundDescription: r.PostFormValue("backgroundDescription"),
	}

	var resume *service.Resume
	if r.MultipartForm != nil {
		if headers := r.MultipartForm.File[resumeFormField]; len(headers) > 0 {
			header := headers[0]
			if header.Size > MaxResumeSize {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Resume file must not exceed 10 MB.")
				return
			}
			file, err := header.Open()
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid form data.", err)
				return
			}
			defer file.Close()
			resume = &service.Resume{Filename: header.Filename, Size: header.Size, Content: file}
		}
	}

	job, err := h.jobs.Apply(r.Context(), jobID, applicant, resume)
	if err != nil {
		HandleAPIError(w, r, err, applyErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, JobResponse{
		Success: true,
		Message: "Application submitted successfully!",
		Job:     job,
	})
}

// applyErrorMessage returns the messages the application form displays.
func applyErrorMessage(err error) string {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr) && vErr.Field == "resume":
		return "Resume file is required."
	case errors.As(err, &vErr):
		return "All required fields must be filled."
	case errors.Is(err, service.ErrJobNotFound):
		return "Job not found."
	case errors.Is(err, service.ErrUpstream):
		return "Error uploading resume."
	default:
		return "Internal server error. Please try again later."
	}
}

// UpdateJob handles PUT /api/jobs/update-job/{jobId}. Only fields present in
// the body change; requirement lists are replaced only when non-empty.
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathUUID(w, r, "jobId", "Job not found")
	if !ok {
		return
	}

	var req JobRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	job, err := h.jobs.Update(r.Context(), jobID, req.ToPatch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, JobResponse{
		Success: true,
		Message: "Job updated successfully!",
		Job:     job,
	})
}

// DeleteJob handles DELETE /api/jobs/delete-job/{jobId}.
func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathUUID(w, r, "jobId", "Job not found")
	if !ok {
		return
	}

	if err := h.jobs.Delete(r.Context(), jobID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessMessageResponse{
		Success: true,
		Message: "Job deleted successfully!",
	})
}

// DeleteApplication handles DELETE /api/jobs/delete-application/{jobId}/{appId}.
func (h *JobHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathUUID(w, r, "jobId", "Job not found")
	if !ok {
		return
	}
	appID, ok := pathUUID(w, r, "appId", "Application not found")
	if !ok {
		return
	}

	if err := h.jobs.DeleteApplication(r.Context(), jobID, appID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessMessageResponse{
		Success: true,
		Message: "Application deleted successfully!",
	})
}
