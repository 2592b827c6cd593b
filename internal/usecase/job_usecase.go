package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/pkg/apperror"
)

// JobFeed pulls postings from an external job board.
type JobFeed interface {
	Fetch(ctx context.Context, query, location string, pages int) ([]domain.JobPosting, error)
}

// Postings untouched by a refresh for this long get deactivated.
const stalePostingAge = 14 * 24 * time.Hour

type jobUsecase struct {
	jobRepo      domain.JobRepository
	savedRepo    domain.SavedJobRepository
	feed         JobFeed
	refreshPages int
}

func NewJobUsecase(jobRepo domain.JobRepository, savedRepo domain.SavedJobRepository, feed JobFeed, refreshPages int) domain.JobUsecase {
	if refreshPages <= 0 {
		refreshPages = 2
	}
	return &jobUsecase{jobRepo: jobRepo, savedRepo: savedRepo, feed: feed, refreshPages: refreshPages}
}

func (u *jobUsecase) ListActiveJobs(ctx context.Context, page, pageSize int) ([]domain.JobPosting, int64, error) {
	limit, offset := pagination(page, pageSize)
	return u.jobRepo.FetchActive(ctx, limit, offset)
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) SearchJobs(ctx context.Context, query, location string, page, pageSize int) ([]domain.JobPosting, int64, error) {
	limit, offset := pagination(page, pageSize)
	return u.jobRepo.Search(ctx, query, location, limit, offset)
}

// RefreshCatalog pulls fresh postings from the feed, upserts them keyed by
// (source, external_id) and deactivates postings the feed stopped returning.
// Returns the number of postings upserted.
func (u *jobUsecase) RefreshCatalog(ctx context.Context, query, location string) (int, error) {
	if u.feed == nil {
		return 0, apperror.Unavailable("Job feed is not configured")
	}

	postings, err := u.feed.Fetch(ctx, query, location, u.refreshPages)
	if err != nil {
		return 0, err
	}

	stored := 0
	for i := range postings {
		if err := u.jobRepo.Upsert(ctx, &postings[i]); err != nil {
			slog.Warn("failed to upsert posting",
				"source", postings[i].Source, "external_id", postings[i].ExternalID, "error", err)
			continue
		}
		stored++
	}

	deactivated, err := u.jobRepo.DeactivateOlderThan(ctx, time.Now().Add(-stalePostingAge))
	if err != nil {
		slog.Warn("failed to deactivate stale postings", "error", err)
	} else if deactivated > 0 {
		slog.Info("deactivated stale postings", "count", deactivated)
	}

	return stored, nil
}

func (u *jobUsecase) SaveJob(ctx context.Context, userID, jobID int64, notes string) error {
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return u.savedRepo.Save(ctx, userID, jobID, notes)
}

func (u *jobUsecase) UnsaveJob(ctx context.Context, userID, jobID int64) error {
	err := u.savedRepo.Delete(ctx, userID, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job is not saved")
	}
	return err
}

func (u *jobUsecase) ListSavedJobs(ctx context.Context, userID int64) ([]domain.SavedJob, error) {
	return u.savedRepo.ListByUser(ctx, userID)
}

func pagination(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return pageSize, (page - 1) * pageSize
}
