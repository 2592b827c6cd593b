package usecase

import (
	"context"
	"log/slog"
	"time"

	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/internal/matching"
	"go-career-mentor-backend/pkg/apperror"
	"go-career-mentor-backend/pkg/email"
)

// Digest size cap per alert email.
const maxDigestMatches = 10

type alertUsecase struct {
	alertRepo   domain.AlertRepository
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	prefsRepo   domain.PreferencesRepository
	jobRepo     domain.JobRepository
	mailer      *email.EmailService
}

func NewAlertUsecase(
	alertRepo domain.AlertRepository,
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	prefsRepo domain.PreferencesRepository,
	jobRepo domain.JobRepository,
	mailer *email.EmailService,
) domain.AlertUsecase {
	return &alertUsecase{
		alertRepo:   alertRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		prefsRepo:   prefsRepo,
		jobRepo:     jobRepo,
		mailer:      mailer,
	}
}

func (u *alertUsecase) CreateAlert(ctx context.Context, alert *domain.JobAlert) error {
	if alert.Frequency == "" {
		alert.Frequency = "daily"
	}
	return u.alertRepo.Create(ctx, alert)
}

func (u *alertUsecase) UpdateAlert(ctx context.Context, alert *domain.JobAlert) error {
	return u.alertRepo.Update(ctx, alert)
}

func (u *alertUsecase) DeleteAlert(ctx context.Context, userID, id int64) error {
	return u.alertRepo.Delete(ctx, userID, id)
}

func (u *alertUsecase) ListAlerts(ctx context.Context, userID int64) ([]domain.JobAlert, error) {
	return u.alertRepo.ListByUser(ctx, userID)
}

// RunDueAlerts re-runs every due stored search, scores the hits against the
// owner's profile and mails a digest of postings above the alert threshold.
// Returns the number of digests sent. A failure on one alert does not stop
// the rest.
func (u *alertUsecase) RunDueAlerts(ctx context.Context) (int, error) {
	if !u.mailer.IsConfigured() {
		return 0, apperror.Unavailable("Email delivery is not configured")
	}

	now := time.Now().UTC()
	due, err := u.alertRepo.ListDue(ctx, now)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, alert := range due {
		if err := u.runAlert(ctx, &alert, now); err != nil {
			slog.Warn("job alert run failed", "alert_id", alert.ID, "user_id", alert.UserID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (u *alertUsecase) runAlert(ctx context.Context, alert *domain.JobAlert, now time.Time) error {
	user, err := u.userRepo.GetByID(ctx, alert.UserID)
	if err != nil {
		return err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, alert.UserID)
	if err != nil {
		return err
	}
	prefs, err := u.prefsRepo.GetByUserID(ctx, alert.UserID)
	if err != nil {
		return err
	}

	jobs, _, err := u.jobRepo.Search(ctx, alert.Keywords, alert.Location, 100, 0)
	if err != nil {
		return err
	}

	matches := make([]email.AlertMatch, 0, maxDigestMatches)
	for i := range jobs {
		result := matching.Score(profile, prefs, &jobs[i])
		if result.OverallScore < alert.MinScore {
			continue
		}
		matches = append(matches, email.AlertMatch{
			Title:    jobs[i].Title,
			Company:  jobs[i].CompanyName,
			Location: jobs[i].Location,
			Score:    result.OverallScore,
			ApplyURL: jobs[i].ApplyURL,
		})
		if len(matches) == maxDigestMatches {
			break
		}
	}

	if len(matches) > 0 {
		data := email.AlertDigestData{
			RecipientName: user.FullName,
			Keywords:      alert.Keywords,
			Matches:       matches,
		}
		if err := u.mailer.SendAlertDigest(user.Email, data); err != nil {
			return err
		}
	}

	return u.alertRepo.MarkRun(ctx, alert.ID, now)
}
