package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is a candidate's submission against a Job. Its ID is unique
// within the owning job; it has no lifecycle outside of it.
type Application struct {
	ID                    uuid.UUID `json:"_id"`
	FullName              string    `json:"fullName"`
	MobileNumber          string    `json:"mobileNumber"`
	Email                 string    `json:"email"`
	WorkplaceType         string    `json:"workplaceType"`
	EmploymentType        string    `json:"employmentType"`
	JobLocation           string    `json:"jobLocation"`
	Resume                string    `json:"resume"`
	BackgroundDescription string    `json:"backgroundDescription,omitempty"`
	AppliedAt             time.Time `json:"appliedAt"`
}

// ValidateApplicant checks the fields a candidate must fill in. The resume URL
// is checked separately because it only exists after the upload.
func (a *Application) ValidateApplicant() error {
	checks := []struct {
		field string
		value string
	}{
		{"fullName", a.FullName},
		{"mobileNumber", a.MobileNumber},
		{"email", a.Email},
		{"workplaceType", a.WorkplaceType},
		{"employmentType", a.EmploymentType},
		{"jobLocation", a.JobLocation},
	}
	for _, c := range checks {
		if err := required(c.field, c.value); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the applicant fields and the resume URL.
func (a *Application) Validate() error {
	if err := a.ValidateApplicant(); err != nil {
		return err
	}
	return required("resume", a.Resume)
}
