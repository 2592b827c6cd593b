package domain

import (
	"context"
	"time"
)

// JobAlert is a stored search that is periodically re-run; new matches are
// mailed to the user.
type JobAlert struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Keywords   string     `json:"keywords" validate:"required,max=200"`
	Location   string     `json:"location" validate:"max=100"`
	MinScore   float64    `json:"min_score" validate:"gte=0,lte=100"`
	Frequency  string     `json:"frequency" validate:"oneof=daily weekly"`
	IsEnabled  bool       `json:"is_enabled"`
	LastRunAt  *time.Time `json:"last_run_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type AlertRepository interface {
	Create(ctx context.Context, alert *JobAlert) error
	Update(ctx context.Context, alert *JobAlert) error
	Delete(ctx context.Context, userID, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]JobAlert, error)
	// ListDue returns enabled alerts whose last run is older than their frequency.
	ListDue(ctx context.Context, now time.Time) ([]JobAlert, error)
	MarkRun(ctx context.Context, id int64, at time.Time) error
}

type AlertUsecase interface {
	CreateAlert(ctx context.Context, alert *JobAlert) error
	UpdateAlert(ctx context.Context, alert *JobAlert) error
	DeleteAlert(ctx context.Context, userID, id int64) error
	ListAlerts(ctx context.Context, userID int64) ([]JobAlert, error)
	// RunDueAlerts scores due alerts against the catalog and emails digests.
	RunDueAlerts(ctx context.Context) (int, error)
}
