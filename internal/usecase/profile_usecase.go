package usecase

import (
	"context"
	"strings"

	"go-career-mentor-backend/internal/domain"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, profile *domain.UserProfile) error {
	profile.TechnicalSkills = normalizeSkills(profile.TechnicalSkills)
	return u.profileRepo.Upsert(ctx, profile)
}

// MergeSkills unions newly discovered skills into the stored profile without
// disturbing the other fields. Creates a bare profile when none exists.
func (u *profileUsecase) MergeSkills(ctx context.Context, userID int64, skills []string) error {
	skills = normalizeSkills(skills)
	if len(skills) == 0 {
		return nil
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		profile = &domain.UserProfile{UserID: userID}
	}

	profile.TechnicalSkills = normalizeSkills(append(profile.TechnicalSkills, skills...))
	return u.profileRepo.Upsert(ctx, profile)
}

// normalizeSkills lower-cases, trims and deduplicates while keeping first
// occurrence order.
func normalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
