package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ftfltech/careers-api/internal/domain"
	"github.com/ftfltech/careers-api/internal/service"
)

// Date accepts either an RFC 3339 timestamp or a bare YYYY-MM-DD date, the two
// forms browser date inputs produce.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

func (d *Date) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func (d *Date) value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}

// JobRequest is the body of both post-job and update-job. Every field is
// optional at this level: a create validates the resulting job, an update
// only touches the fields present in the body.
type JobRequest struct {
	Title           *string              `json:"jobTitle"`
	Description     *string              `json:"jobDescription"`
	Requirements    *domain.Requirements `json:"requirements"`
	WorkEnvironment []string             `json:"workEnvironment"`
	Experience      *string              `json:"experience"`
	Benefits        []string             `json:"benefits"`
	PostDate        *Date                `json:"postDate"`
	ApplyDeadline   *Date                `json:"applyDeadline"`
	JobType         *string              `json:"jobType"`
	Salary          *string              `json:"salary"`
	Qualification   *string              `json:"qualification"`
	OpeningType     *string              `json:"openingType"`
	JobDepartment   *string              `json:"jobDepartment"`
	JobLocation     *string              `json:"jobLocation"`
}

// ToDraft converts the request into a job draft for creation.
func (req JobRequest) ToDraft() domain.Job {
	draft := domain.Job{
		Title:           deref(req.Title),
		Description:     deref(req.Description),
		WorkEnvironment: req.WorkEnvironment,
		Experience:      deref(req.Experience),
		Benefits:        req.Benefits,
		PostDate:        req.PostDate.value(),
		ApplyDeadline:   req.ApplyDeadline.value(),
		JobType:         deref(req.JobType),
		Salary:          deref(req.Salary),
		Qualification:   deref(req.Qualification),
		OpeningType:     deref(req.OpeningType),
		JobDepartment:   deref(req.JobDepartment),
		JobLocation:     deref(req.JobLocation),
	}
	if req.Requirements != nil {
		draft.Requirements = *req.Requirements
	}
	return draft
}

// ToPatch converts the request into a partial update.
func (req JobRequest) ToPatch() domain.JobPatch {
	return domain.JobPatch{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		WorkEnvironment: req.WorkEnvironment,
		Experience:      req.Experience,
		Benefits:        req.Benefits,
		PostDate:        req.PostDate.ptr(),
		ApplyDeadline:   req.ApplyDeadline.ptr(),
		JobType:         req.JobType,
		Salary:          req.Salary,
		Qualification:   req.Qualification,
		OpeningType:     req.OpeningType,
		JobDepartment:   req.JobDepartment,
		JobLocation:     req.JobLocation,
	}
}

// ContactRequest is the body of the contact form.
type ContactRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	City            string `json:"city"`
	Phone           string `json:"phone"`
	ServiceSelected string `json:"serviceSelected"`
	Message         string `json:"message"`
}

// ToDetails converts the request into contact details.
func (req ContactRequest) ToDetails() domain.ContactDetails {
	return domain.ContactDetails{
		Name:            req.Name,
		Email:           req.Email,
		City:            req.City,
		Phone:           req.Phone,
		ServiceSelected: req.ServiceSelected,
		Message:         req.Message,
	}
}

// ContactStatusRequest is the body of a lead status change.
type ContactStatusRequest struct {
	Status    string `json:"status"    validate:"max=64"`
	LeadType  string `json:"leadType"  validate:"max=64"`
	FollowUp  string `json:"followUp"  validate:"max=2000"`
	PackageID string `json:"packageId" validate:"max=128"`
	UserID    string `json:"userId"    validate:"max=128"`
}

// ToStatusUpdate converts the request into a service update.
func (req ContactStatusRequest) ToStatusUpdate() service.StatusUpdate {
	return service.StatusUpdate{
		Status:    req.Status,
		LeadType:  req.LeadType,
		FollowUp:  req.FollowUp,
		PackageID: req.PackageID,
		UserID:    req.UserID,
	}
}

// SubscribeRequest is the body of a newsletter subscription.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required"`
}

// SendNewsletterRequest is the body of a newsletter broadcast.
type SendNewsletterRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessMessageResponse is MessageResponse with the success flag the job
// routes add.
type SuccessMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JobCreatedResponse is returned by post-job.
type JobCreatedResponse struct {
	Message string      `json:"message"`
	Job     *domain.Job `json:"job"`
}

// JobResponse is returned by apply and update-job.
type JobResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Job     *domain.Job `json:"job"`
}

// JobListResponse is returned by all-jobs.
type JobListResponse struct {
	Success bool          `json:"success"`
	Jobs    []*domain.Job `json:"jobs"`
}

// ApplicationListResponse is returned by the applications route.
type ApplicationListResponse struct {
	Success      bool                 `json:"success"`
	Applications []domain.Application `json:"applications"`
}

// ContactCreatedResponse is returned by a contact submission.
type ContactCreatedResponse struct {
	Message string          `json:"message"`
	Contact *domain.Contact `json:"contact"`
}

// NewsletterSentResponse is returned by a successful broadcast.
type NewsletterSentResponse struct {
	Message string            `json:"message"`
	Info    *service.SendInfo `json:"info"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
