package postgres

import (
	"context"
	"time"

	"go-career-mentor-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type alertRepo struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) domain.AlertRepository {
	return &alertRepo{db: db}
}

func (r *alertRepo) Create(ctx context.Context, alert *domain.JobAlert) error {
	query := `INSERT INTO job_alerts (user_id, keywords, location, min_score, frequency, is_enabled, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		alert.UserID, alert.Keywords, alert.Location, alert.MinScore, alert.Frequency, alert.IsEnabled,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
}

func (r *alertRepo) Update(ctx context.Context, alert *domain.JobAlert) error {
	query := `UPDATE job_alerts SET keywords = $3, location = $4, min_score = $5, frequency = $6,
	                                is_enabled = $7, updated_at = NOW()
	          WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(ctx, query,
		alert.ID, alert.UserID, alert.Keywords, alert.Location, alert.MinScore, alert.Frequency, alert.IsEnabled,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *alertRepo) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_alerts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *alertRepo) ListByUser(ctx context.Context, userID int64) ([]domain.JobAlert, error) {
	query := `SELECT id, user_id, keywords, location, min_score, frequency, is_enabled, last_run_at, created_at, updated_at
	          FROM job_alerts WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAlerts(rows)
}

func (r *alertRepo) ListDue(ctx context.Context, now time.Time) ([]domain.JobAlert, error) {
	query := `SELECT id, user_id, keywords, location, min_score, frequency, is_enabled, last_run_at, created_at, updated_at
	          FROM job_alerts
	          WHERE is_enabled = true
	            AND (last_run_at IS NULL
	                 OR (frequency = 'daily' AND last_run_at < $1 - INTERVAL '1 day')
	                 OR (frequency = 'weekly' AND last_run_at < $1 - INTERVAL '7 days'))
	          ORDER BY id`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAlerts(rows)
}

func (r *alertRepo) MarkRun(ctx context.Context, id int64, at time.Time) error {
	result, err := r.db.Exec(ctx, `UPDATE job_alerts SET last_run_at = $2, updated_at = NOW() WHERE id = $1`, id, at)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectAlerts(rows pgx.Rows) ([]domain.JobAlert, error) {
	alerts := make([]domain.JobAlert, 0)
	for rows.Next() {
		var a domain.JobAlert
		err := rows.Scan(&a.ID, &a.UserID, &a.Keywords, &a.Location, &a.MinScore, &a.Frequency,
			&a.IsEnabled, &a.LastRunAt, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
