package postgres

import (
	"context"

	"go-career-mentor-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, analysis *domain.ResumeAnalysis) error {
	query := `INSERT INTO resume_analyses (user_id, filename, email, phone, linkedin_url, github_url,
	                                       skills, experience_years, word_count, analysis_result, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	          RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		analysis.UserID, analysis.Filename, analysis.Email, analysis.Phone,
		analysis.LinkedinURL, analysis.GithubURL,
		pq.Array(analysis.Skills),
		analysis.ExperienceYears, analysis.WordCount, analysis.AnalysisResult,
	).Scan(&analysis.ID, &analysis.CreatedAt)
}

func (r *resumeRepo) ListByUser(ctx context.Context, userID int64) ([]domain.ResumeAnalysis, error) {
	query := `SELECT id, user_id, filename, email, phone, linkedin_url, github_url,
	                 skills, experience_years, word_count, analysis_result, created_at
	          FROM resume_analyses WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := make([]domain.ResumeAnalysis, 0)
	for rows.Next() {
		var a domain.ResumeAnalysis
		err := rows.Scan(
			&a.ID, &a.UserID, &a.Filename, &a.Email, &a.Phone, &a.LinkedinURL, &a.GithubURL,
			&a.Skills,
			&a.ExperienceYears, &a.WordCount, &a.AnalysisResult, &a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}
