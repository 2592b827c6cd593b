package postgres

import (
	"context"

	"go-career-mentor-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

func (r *matchRepo) UpsertBatch(ctx context.Context, userID int64, matches []domain.JobMatch) error {
	if len(matches) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO job_matches (user_id, job_id, match_score, skills_score, experience_score,
	                                   location_score, salary_score, company_score, computed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (user_id, job_id) DO UPDATE SET
	              match_score = EXCLUDED.match_score,
	              skills_score = EXCLUDED.skills_score,
	              experience_score = EXCLUDED.experience_score,
	              location_score = EXCLUDED.location_score,
	              salary_score = EXCLUDED.salary_score,
	              company_score = EXCLUDED.company_score,
	              computed_at = EXCLUDED.computed_at`
	for _, m := range matches {
		batch.Queue(query,
			userID, m.Job.ID, m.Result.OverallScore,
			m.Result.Scores.Skills, m.Result.Scores.Experience, m.Result.Scores.Location,
			m.Result.Scores.Salary, m.Result.Scores.Company, m.ComputedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range matches {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *matchRepo) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM job_matches WHERE user_id = $1`, userID)
	return err
}
