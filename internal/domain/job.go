package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Requirements splits a posting's requirements into must-haves and nice-to-haves.
type Requirements struct {
	MustHave   []string `json:"mustHave"`
	NiceToHave []string `json:"niceToHave"`
}

// Job is a job posting. It owns its applications: they are created, listed and
// removed only through the job and are discarded together with it.
type Job struct {
	ID              uuid.UUID     `json:"_id"`
	Title           string        `json:"jobTitle"`
	Description     string        `json:"jobDescription"`
	Requirements    Requirements  `json:"requirements"`
	WorkEnvironment []string      `json:"workEnvironment"`
	Experience      string        `json:"experience"`
	Benefits        []string      `json:"benefits"`
	PostDate        time.Time     `json:"postDate"`
	ApplyDeadline   time.Time     `json:"applyDeadline"`
	JobType         string        `json:"jobType"`
	Salary          string        `json:"salary"`
	Qualification   string        `json:"qualification"`
	OpeningType     string        `json:"openingType"`
	JobDepartment   string        `json:"jobDepartment,omitempty"`
	JobLocation     string        `json:"jobLocation,omitempty"`
	Applications    []Application `json:"applications"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	// appIndex maps application IDs to their position in Applications.
	appIndex map[uuid.UUID]int
}

// JobPatch carries a partial update. Nil pointers and nil slices mean "not
// provided"; a non-nil empty slice is an explicit value.
type JobPatch struct {
	Title           *string
	Description     *string
	Requirements    *Requirements
	WorkEnvironment []string
	Experience      *string
	Benefits        []string
	PostDate        *time.Time
	ApplyDeadline   *time.Time
	JobType         *string
	Salary          *string
	Qualification   *string
	OpeningType     *string
	JobDepartment   *string
	JobLocation     *string
}

// NewJob builds a job from a draft, assigning a fresh ID, defaulting PostDate
// to now and normalizing nil lists to empty ones. Returns a *ValidationError if
// a required field is missing.
func NewJob(draft Job) (*Job, error) {
	now := time.Now().UTC()

	job := draft
	job.ID = uuid.New()
	job.Applications = nil
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.PostDate.IsZero() {
		job.PostDate = now
	}
	job.normalize()

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// Validate checks required fields. The first failure is returned.
func (j *Job) Validate() error {
	checks := []struct {
		field string
		value string
	}{
		{"jobTitle", j.Title},
		{"jobDescription", j.Description},
		{"experience", j.Experience},
		{"jobType", j.JobType},
		{"salary", j.Salary},
		{"qualification", j.Qualification},
		{"openingType", j.OpeningType},
	}
	for _, c := range checks {
		if err := required(c.field, c.value); err != nil {
			return err
		}
	}

	if j.ApplyDeadline.IsZero() {
		return NewValidationError("applyDeadline", "is required")
	}
	if len(j.WorkEnvironment) == 0 {
		return NewValidationError("workEnvironment", "must contain at least one entry")
	}
	for _, w := range j.WorkEnvironment {
		if isBlank(w) {
			return NewValidationError("workEnvironment", "entries cannot be empty")
		}
	}
	for _, m := range j.Requirements.MustHave {
		if isBlank(m) {
			return NewValidationError("requirements.mustHave", "entries cannot be empty")
		}
	}
	return nil
}

// ApplyPatch merges p into the job. Top-level scalars are replaced when
// provided. mustHave and niceToHave are each replaced only by a non-empty
// list, so an empty list cannot wipe them. workEnvironment and benefits are
// replaced whenever provided, including by an empty list.
func (j *Job) ApplyPatch(p JobPatch) {
	setString(&j.Title, p.Title)
	setString(&j.Description, p.Description)
	setString(&j.Experience, p.Experience)
	setString(&j.JobType, p.JobType)
	setString(&j.Salary, p.Salary)
	setString(&j.Qualification, p.Qualification)
	setString(&j.OpeningType, p.OpeningType)
	setString(&j.JobDepartment, p.JobDepartment)
	setString(&j.JobLocation, p.JobLocation)

	if p.PostDate != nil {
		j.PostDate = *p.PostDate
	}
	if p.ApplyDeadline != nil {
		j.ApplyDeadline = *p.ApplyDeadline
	}

	if p.Requirements != nil {
		if len(p.Requirements.MustHave) > 0 {
			j.Requirements.MustHave = append([]string(nil), p.Requirements.MustHave...)
		}
		if len(p.Requirements.NiceToHave) > 0 {
			j.Requirements.NiceToHave = append([]string(nil), p.Requirements.NiceToHave...)
		}
	}
	if p.WorkEnvironment != nil {
		j.WorkEnvironment = append([]string{}, p.WorkEnvironment...)
	}
	if p.Benefits != nil {
		j.Benefits = append([]string{}, p.Benefits...)
	}

	j.UpdatedAt = time.Now().UTC()
}

// AddApplication validates app, gives it an ID and appends it. Applications
// are never deduplicated.
func (j *Job) AddApplication(app Application) (*Application, error) {
	if err := app.Validate(); err != nil {
		return nil, err
	}

	app.ID = uuid.New()
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now().UTC()
	}

	j.ensureIndex()
	j.Applications = append(j.Applications, app)
	j.appIndex[app.ID] = len(j.Applications) - 1
	j.UpdatedAt = time.Now().UTC()

	return &j.Applications[len(j.Applications)-1], nil
}

// Application looks up an application by ID.
func (j *Job) Application(id uuid.UUID) (*Application, bool) {
	j.ensureIndex()
	i, ok := j.appIndex[id]
	if !ok {
		return nil, false
	}
	return &j.Applications[i], true
}

// RemoveApplication deletes an application in place, keeping the order of the
// rest. Returns ErrApplicationNotFound if id is not part of this job.
func (j *Job) RemoveApplication(id uuid.UUID) error {
	j.ensureIndex()
	i, ok := j.appIndex[id]
	if !ok {
		return ErrApplicationNotFound
	}

	j.Applications = append(j.Applications[:i], j.Applications[i+1:]...)
	j.reindex()
	j.UpdatedAt = time.Now().UTC()
	return nil
}

// UnmarshalJSON decodes a stored job document and rebuilds the application index.
func (j *Job) UnmarshalJSON(data []byte) error {
	type plain Job
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*j = Job(decoded)
	j.normalize()
	j.reindex()
	return nil
}

func (j *Job) normalize() {
	if j.Requirements.MustHave == nil {
		j.Requirements.MustHave = []string{}
	}
	if j.Requirements.NiceToHave == nil {
		j.Requirements.NiceToHave = []string{}
	}
	if j.WorkEnvironment == nil {
		j.WorkEnvironment = []string{}
	}
	if j.Benefits == nil {
		j.Benefits = []string{}
	}
	if j.Applications == nil {
		j.Applications = []Application{}
	}
}

func (j *Job) ensureIndex() {
	if j.appIndex == nil || len(j.appIndex) != len(j.Applications) {
		j.reindex()
	}
}

func (j *Job) reindex() {
	j.appIndex = make(map[uuid.UUID]int, len(j.Applications))
	for i, app := range j.Applications {
		j.appIndex[app.ID] = i
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
