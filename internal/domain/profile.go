package domain

import (
	"context"
	"time"
)

// Experience levels form a fixed ordinal scale used by the matching engine.
const (
	ExperienceJunior    = "junior"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceLead      = "lead"
	ExperienceExecutive = "executive"
)

// UserProfile holds the career data extracted from resumes or edited by the
// user. TechnicalSkills is stored normalized: lower-cased and deduplicated.
type UserProfile struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	CurrentTitle      string    `json:"current_title" validate:"max=150"`
	ExperienceLevel   *string   `json:"experience_level" validate:"omitempty,oneof=junior mid senior lead executive"`
	YearsOfExperience int       `json:"years_of_experience" validate:"gte=0,lte=60"`
	TechnicalSkills   []string  `json:"technical_skills"`
	Phone             string    `json:"phone"`
	Location          string    `json:"location"`
	LinkedinURL       string    `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL         string    `json:"github_url" validate:"omitempty,url"`
	PortfolioURL      string    `json:"portfolio_url" validate:"omitempty,url"`
	Summary           string    `json:"summary" validate:"max=2000"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	// GetByUserID returns (nil, nil) when the user has no profile yet.
	GetByUserID(ctx context.Context, userID int64) (*UserProfile, error)
	Upsert(ctx context.Context, profile *UserProfile) error
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*UserProfile, error)
	UpdateProfile(ctx context.Context, profile *UserProfile) error
	MergeSkills(ctx context.Context, userID int64, skills []string) error
}
