package postgres

import (
	"context"
	"errors"

	"go-career-mentor-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// GetByUserID returns (nil, nil) when the user has no profile yet so
// callers can treat a missing profile as neutral input.
func (r *profileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	query := `SELECT user_id, current_title, experience_level, years_of_experience, technical_skills,
	                 phone, location, linkedin_url, github_url, portfolio_url, summary, created_at, updated_at
	          FROM user_profiles WHERE user_id = $1`
	var p domain.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.CurrentTitle, &p.ExperienceLevel, &p.YearsOfExperience,
		&p.TechnicalSkills,
		&p.Phone, &p.Location, &p.LinkedinURL, &p.GithubURL, &p.PortfolioURL, &p.Summary,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	query := `INSERT INTO user_profiles (user_id, current_title, experience_level, years_of_experience, technical_skills,
	                                     phone, location, linkedin_url, github_url, portfolio_url, summary, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	          ON CONFLICT (user_id) DO UPDATE SET
	              current_title = EXCLUDED.current_title,
	              experience_level = EXCLUDED.experience_level,
	              years_of_experience = EXCLUDED.years_of_experience,
	              technical_skills = EXCLUDED.technical_skills,
	              phone = EXCLUDED.phone,
	              location = EXCLUDED.location,
	              linkedin_url = EXCLUDED.linkedin_url,
	              github_url = EXCLUDED.github_url,
	              portfolio_url = EXCLUDED.portfolio_url,
	              summary = EXCLUDED.summary,
	              updated_at = NOW()
	          RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.CurrentTitle, profile.ExperienceLevel, profile.YearsOfExperience,
		pq.Array(profile.TechnicalSkills),
		profile.Phone, profile.Location, profile.LinkedinURL, profile.GithubURL, profile.PortfolioURL, profile.Summary,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}
