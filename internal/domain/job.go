package domain

import (
	"context"
	"time"
)

// Remote type values on a posting.
const (
	JobRemote = "remote"
	JobHybrid = "hybrid"
	JobOnsite = "onsite"
)

// JobPosting is an aggregated posting from an external job board. Skill
// fields are decomposed sets (lower-cased), never comma-joined strings.
type JobPosting struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	CompanyName     string     `json:"company_name"`
	CompanySize     *string    `json:"company_size,omitempty"`
	CompanyLogoURL  *string    `json:"company_logo_url,omitempty"`
	Location        string     `json:"location"`
	Description     string     `json:"description"`
	RequiredSkills  []string   `json:"required_skills"`
	PreferredSkills []string   `json:"preferred_skills"`
	Technologies    []string   `json:"technologies"`
	ExperienceLevel *string    `json:"experience_level,omitempty"`
	RemoteType      string     `json:"remote_type"`
	EmploymentType  string     `json:"employment_type"`
	SalaryMin       *int       `json:"salary_min,omitempty"`
	SalaryMax       *int       `json:"salary_max,omitempty"`
	Source          string     `json:"source"`
	ExternalID      string     `json:"external_id"`
	ApplyURL        string     `json:"apply_url"`
	PostedDate      *time.Time `json:"posted_date,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type SavedJob struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"user_id"`
	JobID   int64     `json:"job_id"`
	Notes   string    `json:"notes"`
	SavedAt time.Time `json:"saved_at"`
	Job     *JobPosting `json:"job,omitempty"`
}

type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	// FetchActive returns only postings with is_active = true.
	FetchActive(ctx context.Context, limit, offset int) ([]JobPosting, int64, error)
	// FetchAllActive returns the full active catalog for a ranking pass.
	FetchAllActive(ctx context.Context) ([]JobPosting, error)
	Search(ctx context.Context, query, location string, limit, offset int) ([]JobPosting, int64, error)
	// Upsert inserts or refreshes a posting keyed by (source, external_id).
	Upsert(ctx context.Context, job *JobPosting) error
	DeactivateOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type SavedJobRepository interface {
	Save(ctx context.Context, userID, jobID int64, notes string) error
	Delete(ctx context.Context, userID, jobID int64) error
	ListByUser(ctx context.Context, userID int64) ([]SavedJob, error)
}

type JobUsecase interface {
	ListActiveJobs(ctx context.Context, page, pageSize int) ([]JobPosting, int64, error)
	GetJob(ctx context.Context, id int64) (*JobPosting, error)
	SearchJobs(ctx context.Context, query, location string, page, pageSize int) ([]JobPosting, int64, error)
	RefreshCatalog(ctx context.Context, query, location string) (int, error)
	SaveJob(ctx context.Context, userID, jobID int64, notes string) error
	UnsaveJob(ctx context.Context, userID, jobID int64) error
	ListSavedJobs(ctx context.Context, userID int64) ([]SavedJob, error)
}
