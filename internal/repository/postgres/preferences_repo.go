package postgres

import (
	"context"
	"errors"

	"go-career-mentor-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type preferencesRepo struct {
	db *pgxpool.Pool
}

func NewPreferencesRepository(db *pgxpool.Pool) domain.PreferencesRepository {
	return &preferencesRepo{db: db}
}

// GetByUserID returns (nil, nil) when the user has not saved preferences.
func (r *preferencesRepo) GetByUserID(ctx context.Context, userID int64) (*domain.UserJobPreferences, error) {
	query := `SELECT user_id, remote_preference, preferred_locations, willing_to_relocate, minimum_salary,
	                 preferred_companies, company_sizes, job_types, preferred_titles, created_at, updated_at
	          FROM user_job_preferences WHERE user_id = $1`
	var p domain.UserJobPreferences
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.RemotePreference,
		&p.PreferredLocations,
		&p.WillingToRelocate, &p.MinimumSalary,
		&p.PreferredCompanies,
		&p.CompanySizes,
		&p.JobTypes,
		&p.PreferredTitles,
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

func (r *preferencesRepo) Upsert(ctx context.Context, prefs *domain.UserJobPreferences) error {
	query := `INSERT INTO user_job_preferences (user_id, remote_preference, preferred_locations, willing_to_relocate,
	                                            minimum_salary, preferred_companies, company_sizes, job_types,
	                                            preferred_titles, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	          ON CONFLICT (user_id) DO UPDATE SET
	              remote_preference = EXCLUDED.remote_preference,
	              preferred_locations = EXCLUDED.preferred_locations,
	              willing_to_relocate = EXCLUDED.willing_to_relocate,
	              minimum_salary = EXCLUDED.minimum_salary,
	              preferred_companies = EXCLUDED.preferred_companies,
	              company_sizes = EXCLUDED.company_sizes,
	              job_types = EXCLUDED.job_types,
	              preferred_titles = EXCLUDED.preferred_titles,
	              updated_at = NOW()
	          RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		prefs.UserID, prefs.RemotePreference,
		pq.Array(prefs.PreferredLocations),
		prefs.WillingToRelocate, prefs.MinimumSalary,
		pq.Array(prefs.PreferredCompanies),
		pq.Array(prefs.CompanySizes),
		pq.Array(prefs.JobTypes),
		pq.Array(prefs.PreferredTitles),
	).Scan(&prefs.CreatedAt, &prefs.UpdatedAt)
}
