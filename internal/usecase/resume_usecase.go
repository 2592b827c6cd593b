package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go-career-mentor-backend/internal/ai"
	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/internal/resumeparse"
	"go-career-mentor-backend/pkg/apperror"
)

// ResumeReviewer is the slice of the AI client the resume pipeline needs.
type ResumeReviewer interface {
	ReviewResume(ctx context.Context, resumeText string) (string, error)
}

const maxResumeBytes = 5 << 20

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	profiles   domain.ProfileUsecase
	reviewer   ResumeReviewer
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository, profiles domain.ProfileUsecase, reviewer ResumeReviewer) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo, profiles: profiles, reviewer: reviewer}
}

func (u *resumeUsecase) AnalyzeUpload(ctx context.Context, userID int64, filename string, data []byte) (*domain.ResumeAnalysis, error) {
	if len(data) == 0 {
		return nil, apperror.BadRequest("Uploaded file is empty")
	}
	if len(data) > maxResumeBytes {
		return nil, apperror.BadRequest("Resume file exceeds 5MB")
	}

	text, err := resumeparse.ExtractText(filename, data)
	if err != nil {
		if errors.Is(err, resumeparse.ErrUnsupportedFormat) {
			return nil, apperror.BadRequest("Only PDF, DOCX and TXT resumes are supported")
		}
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperror.BadRequest("Could not extract text from the file")
	}

	parsed := resumeparse.Parse(text)

	analysis := &domain.ResumeAnalysis{
		UserID:          userID,
		Filename:        filename,
		Email:           parsed.Email,
		Phone:           parsed.Phone,
		LinkedinURL:     parsed.LinkedinURL,
		GithubURL:       parsed.GithubURL,
		Skills:          parsed.Skills,
		ExperienceYears: parsed.ExperienceYears,
		WordCount:       parsed.WordCount,
	}

	// The AI review is optional; the structured extraction still succeeds
	// when the mentor is unavailable.
	review, err := u.reviewer.ReviewResume(ctx, text)
	if err != nil {
		if !errors.Is(err, ai.ErrNotConfigured) {
			slog.Warn("resume review failed", "user_id", userID, "error", err)
		}
	} else {
		analysis.AnalysisResult = review
	}

	if err := u.resumeRepo.Create(ctx, analysis); err != nil {
		return nil, err
	}

	if err := u.profiles.MergeSkills(ctx, userID, parsed.Skills); err != nil {
		slog.Warn("failed to merge resume skills into profile", "user_id", userID, "error", err)
	}

	return analysis, nil
}

func (u *resumeUsecase) ListAnalyses(ctx context.Context, userID int64) ([]domain.ResumeAnalysis, error) {
	return u.resumeRepo.ListByUser(ctx, userID)
}
