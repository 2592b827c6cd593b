package postgres

import (
	"context"
	"errors"
	"time"

	"go-career-mentor-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, company_name, company_size, company_logo_url, location, description,
	required_skills, preferred_skills, technologies, experience_level, remote_type, employment_type,
	salary_min, salary_max, source, external_id, apply_url, posted_date, is_active, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.JobPosting, error) {
	var j domain.JobPosting
	err := row.Scan(
		&j.ID, &j.Title, &j.CompanyName, &j.CompanySize, &j.CompanyLogoURL, &j.Location, &j.Description,
		&j.RequiredSkills, &j.PreferredSkills, &j.Technologies,
		&j.ExperienceLevel, &j.RemoteType, &j.EmploymentType,
		&j.SalaryMin, &j.SalaryMax, &j.Source, &j.ExternalID, &j.ApplyURL, &j.PostedDate,
		&j.IsActive, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobPosting, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + jobColumns + `
	          FROM job_postings WHERE is_active = true
	          ORDER BY posted_date DESC NULLS LAST, id DESC
	          LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) FetchAllActive(ctx context.Context) ([]domain.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE is_active = true`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *jobRepo) Search(ctx context.Context, query, location string, limit, offset int) ([]domain.JobPosting, int64, error) {
	where := `is_active = true
	          AND ($1 = '' OR title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%' OR company_name ILIKE '%' || $1 || '%')
	          AND ($2 = '' OR location ILIKE '%' || $2 || '%')`

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE `+where, query, location).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := `SELECT ` + jobColumns + `
	        FROM job_postings WHERE ` + where + `
	        ORDER BY posted_date DESC NULLS LAST, id DESC
	        LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, sql, query, location, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Upsert(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings (title, company_name, company_size, company_logo_url, location, description,
	                                    required_skills, preferred_skills, technologies, experience_level, remote_type,
	                                    employment_type, salary_min, salary_max, source, external_id, apply_url,
	                                    posted_date, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
	          ON CONFLICT (source, external_id) DO UPDATE SET
	              title = EXCLUDED.title,
	              company_name = EXCLUDED.company_name,
	              company_size = EXCLUDED.company_size,
	              company_logo_url = EXCLUDED.company_logo_url,
	              location = EXCLUDED.location,
	              description = EXCLUDED.description,
	              required_skills = EXCLUDED.required_skills,
	              preferred_skills = EXCLUDED.preferred_skills,
	              technologies = EXCLUDED.technologies,
	              experience_level = EXCLUDED.experience_level,
	              remote_type = EXCLUDED.remote_type,
	              employment_type = EXCLUDED.employment_type,
	              salary_min = EXCLUDED.salary_min,
	              salary_max = EXCLUDED.salary_max,
	              apply_url = EXCLUDED.apply_url,
	              posted_date = EXCLUDED.posted_date,
	              is_active = true,
	              updated_at = NOW()
	          RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		job.Title, job.CompanyName, job.CompanySize, job.CompanyLogoURL, job.Location, job.Description,
		pq.Array(job.RequiredSkills), pq.Array(job.PreferredSkills), pq.Array(job.Technologies),
		job.ExperienceLevel, job.RemoteType, job.EmploymentType, job.SalaryMin, job.SalaryMax,
		job.Source, job.ExternalID, job.ApplyURL, job.PostedDate, job.IsActive,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepo) DeactivateOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE job_postings SET is_active = false, updated_at = NOW()
	          WHERE is_active = true AND updated_at < $1`
	result, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func collectJobs(rows pgx.Rows) ([]domain.JobPosting, error) {
	jobs := make([]domain.JobPosting, 0)
	for rows.Next() {
		var j domain.JobPosting
		err := rows.Scan(
			&j.ID, &j.Title, &j.CompanyName, &j.CompanySize, &j.CompanyLogoURL, &j.Location, &j.Description,
			&j.RequiredSkills, &j.PreferredSkills, &j.Technologies,
			&j.ExperienceLevel, &j.RemoteType, &j.EmploymentType,
			&j.SalaryMin, &j.SalaryMax, &j.Source, &j.ExternalID, &j.ApplyURL, &j.PostedDate,
			&j.IsActive, &j.CreatedAt, &j.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
