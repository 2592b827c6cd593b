package postgres

import (
	"context"

	"go-career-mentor-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

func (r *savedJobRepo) Save(ctx context.Context, userID, jobID int64, notes string) error {
	query := `INSERT INTO saved_jobs (user_id, job_id, notes, saved_at)
	          VALUES ($1, $2, $3, NOW())
	          ON CONFLICT (user_id, job_id) DO UPDATE SET notes = EXCLUDED.notes`
	_, err := r.db.Exec(ctx, query, userID, jobID, notes)
	return err
}

func (r *savedJobRepo) Delete(ctx context.Context, userID, jobID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *savedJobRepo) ListByUser(ctx context.Context, userID int64) ([]domain.SavedJob, error) {
	query := `SELECT s.id, s.user_id, s.job_id, s.notes, s.saved_at, ` + prefixJobColumns("j") + `
	          FROM saved_jobs s
	          JOIN job_postings j ON j.id = s.job_id
	          WHERE s.user_id = $1
	          ORDER BY s.saved_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := make([]domain.SavedJob, 0)
	for rows.Next() {
		var s domain.SavedJob
		var j domain.JobPosting
		err := rows.Scan(
			&s.ID, &s.UserID, &s.JobID, &s.Notes, &s.SavedAt,
			&j.ID, &j.Title, &j.CompanyName, &j.CompanySize, &j.CompanyLogoURL, &j.Location, &j.Description,
			&j.RequiredSkills, &j.PreferredSkills, &j.Technologies,
			&j.ExperienceLevel, &j.RemoteType, &j.EmploymentType,
			&j.SalaryMin, &j.SalaryMax, &j.Source, &j.ExternalID, &j.ApplyURL, &j.PostedDate,
			&j.IsActive, &j.CreatedAt, &j.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		s.Job = &j
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

func prefixJobColumns(alias string) string {
	return alias + `.id, ` + alias + `.title, ` + alias + `.company_name, ` + alias + `.company_size, ` +
		alias + `.company_logo_url, ` + alias + `.location, ` + alias + `.description, ` +
		alias + `.required_skills, ` + alias + `.preferred_skills, ` + alias + `.technologies, ` +
		alias + `.experience_level, ` + alias + `.remote_type, ` + alias + `.employment_type, ` +
		alias + `.salary_min, ` + alias + `.salary_max, ` + alias + `.source, ` + alias + `.external_id, ` +
		alias + `.apply_url, ` + alias + `.posted_date, ` + alias + `.is_active, ` +
		alias + `.created_at, ` + alias + `.updated_at`
}
