package domain

import (
	"context"
	"time"
)

// ScoreBreakdown holds the five named sub-scores, each in [0, 100].
type ScoreBreakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Location   float64 `json:"location"`
	Salary     float64 `json:"salary"`
	Company    float64 `json:"company"`
}

// MatchResult is the output of the scoring engine for one (user, job) pair.
type MatchResult struct {
	OverallScore float64        `json:"match_score"`
	Scores       ScoreBreakdown `json:"scores"`
}

// JobMatch pairs a posting with its computed result. The ranking driver
// returns these sorted by OverallScore descending.
type JobMatch struct {
	Job       JobPosting  `json:"job"`
	Result    MatchResult `json:"result"`
	ComputedAt time.Time  `json:"computed_at"`
}

type MatchRepository interface {
	// UpsertBatch stores computed matches keyed by (user_id, job_id).
	UpsertBatch(ctx context.Context, userID int64, matches []JobMatch) error
	DeleteByUser(ctx context.Context, userID int64) error
}

type MatchUsecase interface {
	// FindMatches ranks the active catalog for one user. A user without a
	// profile or preferences still gets results via neutral defaults; a
	// nonexistent user gets an empty slice, not an error.
	FindMatches(ctx context.Context, userID int64, limit int, minScore float64) ([]JobMatch, error)
}
