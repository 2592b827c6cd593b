package usecase

import (
	"context"

	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/pkg/apperror"
)

type preferencesUsecase struct {
	prefsRepo domain.PreferencesRepository
}

func NewPreferencesUsecase(prefsRepo domain.PreferencesRepository) domain.PreferencesUsecase {
	return &preferencesUsecase{prefsRepo: prefsRepo}
}

func (u *preferencesUsecase) GetPreferences(ctx context.Context, userID int64) (*domain.UserJobPreferences, error) {
	return u.prefsRepo.GetByUserID(ctx, userID)
}

func (u *preferencesUsecase) UpdatePreferences(ctx context.Context, prefs *domain.UserJobPreferences) error {
	if prefs.MinimumSalary != nil && *prefs.MinimumSalary <= 0 {
		return apperror.BadRequest("minimum_salary must be positive")
	}
	return u.prefsRepo.Upsert(ctx, prefs)
}
