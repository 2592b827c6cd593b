package domain

import (
	"context"
	"time"
)

// ResumeAnalysis is the stored outcome of one resume upload: the contact
// details and skills pulled out of the document plus the AI review.
type ResumeAnalysis struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Filename        string    `json:"filename"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	LinkedinURL     string    `json:"linkedin_url"`
	GithubURL       string    `json:"github_url"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	WordCount       int       `json:"word_count"`
	AnalysisResult  string    `json:"analysis_result"`
	CreatedAt       time.Time `json:"created_at"`
}

type ResumeRepository interface {
	Create(ctx context.Context, analysis *ResumeAnalysis) error
	ListByUser(ctx context.Context, userID int64) ([]ResumeAnalysis, error)
}

type ResumeUsecase interface {
	// AnalyzeUpload extracts text from the uploaded document, parses
	// contacts and skills, stores the analysis and merges the skills into
	// the user's profile.
	AnalyzeUpload(ctx context.Context, userID int64, filename string, data []byte) (*ResumeAnalysis, error)
	ListAnalyses(ctx context.Context, userID int64) ([]ResumeAnalysis, error)
}

// AssistantUsecase groups the AI text-generation operations.
type AssistantUsecase interface {
	GenerateCoverLetter(ctx context.Context, userID, jobID int64, tone string) (string, error)
	OptimizeResume(ctx context.Context, userID int64, resumeText, targetRole string) (string, error)
}
