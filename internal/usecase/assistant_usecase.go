package usecase

import (
	"context"
	"errors"
	"strings"

	"go-career-mentor-backend/internal/ai"
	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/pkg/apperror"
)

// AssistantClient is the slice of the AI client the writing helpers need.
type AssistantClient interface {
	GenerateCoverLetter(ctx context.Context, profile *domain.UserProfile, job *domain.JobPosting, tone string) (string, error)
	OptimizeResume(ctx context.Context, resumeText, targetRole string) (string, error)
}

type assistantUsecase struct {
	profileRepo domain.ProfileRepository
	jobRepo     domain.JobRepository
	client      AssistantClient
}

func NewAssistantUsecase(profileRepo domain.ProfileRepository, jobRepo domain.JobRepository, client AssistantClient) domain.AssistantUsecase {
	return &assistantUsecase{profileRepo: profileRepo, jobRepo: jobRepo, client: client}
}

func (u *assistantUsecase) GenerateCoverLetter(ctx context.Context, userID, jobID int64, tone string) (string, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Job not found")
		}
		return "", err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	letter, err := u.client.GenerateCoverLetter(ctx, profile, job, tone)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return "", apperror.Unavailable("AI mentor is not configured")
		}
		return "", err
	}
	return letter, nil
}

func (u *assistantUsecase) OptimizeResume(ctx context.Context, userID int64, resumeText, targetRole string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", apperror.BadRequest("Resume text must not be empty")
	}

	optimized, err := u.client.OptimizeResume(ctx, resumeText, targetRole)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return "", apperror.Unavailable("AI mentor is not configured")
		}
		return "", err
	}
	return optimized, nil
}
