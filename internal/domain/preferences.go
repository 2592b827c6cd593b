package domain

import (
	"context"
	"time"
)

// Remote work preference values.
const (
	RemoteOnly     = "remote_only"
	RemoteFlexible = "flexible"
	RemoteHybrid   = "hybrid"
	RemoteOnsite   = "onsite"
)

// UserJobPreferences drives the location, salary and company sub-scores.
// Every field is optional; the matching engine resolves absence to a neutral
// score instead of failing.
type UserJobPreferences struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	RemotePreference   string    `json:"remote_preference" validate:"omitempty,oneof=remote_only flexible hybrid onsite"`
	PreferredLocations []string  `json:"preferred_locations"`
	WillingToRelocate  bool      `json:"willing_to_relocate"`
	MinimumSalary      *int      `json:"minimum_salary" validate:"omitempty,gt=0"`
	PreferredCompanies []string  `json:"preferred_companies"`
	CompanySizes       []string  `json:"company_sizes"`
	JobTypes           []string  `json:"job_types"`
	PreferredTitles    []string  `json:"preferred_titles"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type PreferencesRepository interface {
	// GetByUserID returns (nil, nil) when the user never saved preferences.
	GetByUserID(ctx context.Context, userID int64) (*UserJobPreferences, error)
	Upsert(ctx context.Context, prefs *UserJobPreferences) error
}

type PreferencesUsecase interface {
	GetPreferences(ctx context.Context, userID int64) (*UserJobPreferences, error)
	UpdatePreferences(ctx context.Context, prefs *UserJobPreferences) error
}
