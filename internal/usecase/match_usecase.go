package usecase

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/internal/matching"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultMatchLimit    = 20
	DefaultMatchMinScore = 50.0
)

type matchUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	prefsRepo   domain.PreferencesRepository
	jobRepo     domain.JobRepository
	matchRepo   domain.MatchRepository
}

func NewMatchUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	prefsRepo domain.PreferencesRepository,
	jobRepo domain.JobRepository,
	matchRepo domain.MatchRepository,
) domain.MatchUsecase {
	return &matchUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		prefsRepo:   prefsRepo,
		jobRepo:     jobRepo,
		matchRepo:   matchRepo,
	}
}

// FindMatches scores every active posting for the user, filters by minScore,
// sorts by score descending and returns at most limit results. The profile
// and preferences are loaded once per call; a missing profile or preferences
// row degrades to neutral sub-scores rather than an error.
func (u *matchUsecase) FindMatches(ctx context.Context, userID int64, limit int, minScore float64) ([]domain.JobMatch, error) {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}
	if minScore < 0 {
		minScore = DefaultMatchMinScore
	}

	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.JobMatch{}, nil
		}
		return nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := u.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.FetchAllActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return []domain.JobMatch{}, nil
	}

	computedAt := time.Now().UTC()
	results := make([]*domain.JobMatch, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if !jobs[i].IsActive {
				return nil
			}
			result := matching.Score(profile, prefs, &jobs[i])
			if result.OverallScore >= minScore {
				results[i] = &domain.JobMatch{
					Job:        jobs[i],
					Result:     result,
					ComputedAt: computedAt,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]domain.JobMatch, 0, len(jobs))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}

	// Deterministic order: best score first, ties broken by newer posting
	// then lower job ID.
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Result.OverallScore != matches[b].Result.OverallScore {
			return matches[a].Result.OverallScore > matches[b].Result.OverallScore
		}
		pa, pb := matches[a].Job.PostedDate, matches[b].Job.PostedDate
		switch {
		case pa != nil && pb != nil && !pa.Equal(*pb):
			return pa.After(*pb)
		case pa != nil && pb == nil:
			return true
		case pa == nil && pb != nil:
			return false
		}
		return matches[a].Job.ID < matches[b].Job.ID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	// Persisting match history is best effort; ranking results still return
	// when the write fails.
	if err := u.matchRepo.UpsertBatch(ctx, userID, matches); err != nil {
		slog.Warn("failed to persist job matches", "user_id", userID, "error", err)
	}

	return matches, nil
}
