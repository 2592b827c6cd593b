// Package ai wraps the OpenAI chat completion API behind the small set of
// text-generation operations the product needs.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go-career-mentor-backend/internal/domain"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const mentorSystemPrompt = `You are an experienced career mentor specializing in the tech industry.
You give practical, actionable advice on job searching, interviews, resumes,
career transitions and skill development. Keep answers concise and concrete.
When the user shares their background, tailor the advice to their experience
level and skills.`

// Mentor is the AI text-generation client. A nil *Mentor is valid and every
// method on it reports the service as unconfigured, so callers do not need
// their own nil checks.
type Mentor struct {
	client *openai.Client
	model  string
}

var ErrNotConfigured = errors.New("ai mentor is not configured")

func NewMentor(apiKey, model string) *Mentor {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Mentor{client: &client, model: model}
}

// Chat answers one user message given the prior conversation turns.
func (m *Mentor) Chat(ctx context.Context, history []domain.ChatMessage, message string) (string, error) {
	if m == nil {
		return "", ErrNotConfigured
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(mentorSystemPrompt))
	for _, h := range history {
		if h.Role == "ai" {
			messages = append(messages, openai.AssistantMessage(h.Content))
		} else {
			messages = append(messages, openai.UserMessage(h.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	return m.complete(ctx, messages, 500, 0.7)
}

// GenerateCoverLetter drafts a cover letter for the given posting from the
// user's profile data.
func (m *Mentor) GenerateCoverLetter(ctx context.Context, profile *domain.UserProfile, job *domain.JobPosting, tone string) (string, error) {
	if m == nil {
		return "", ErrNotConfigured
	}
	if tone == "" {
		tone = "professional"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s cover letter for the following position.\n\n", tone)
	fmt.Fprintf(&b, "Position: %s at %s\n", job.Title, job.CompanyName)
	if job.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", job.Location)
	}
	fmt.Fprintf(&b, "Description: %s\n\n", truncate(job.Description, 2000))
	if profile != nil {
		fmt.Fprintf(&b, "Candidate title: %s\n", profile.CurrentTitle)
		fmt.Fprintf(&b, "Years of experience: %d\n", profile.YearsOfExperience)
		if len(profile.TechnicalSkills) > 0 {
			fmt.Fprintf(&b, "Skills: %s\n", strings.Join(profile.TechnicalSkills, ", "))
		}
		if profile.Summary != "" {
			fmt.Fprintf(&b, "Summary: %s\n", truncate(profile.Summary, 1000))
		}
	}
	b.WriteString("\nKeep it under 350 words, three paragraphs, no placeholders like [Company Name].")

	return m.complete(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(mentorSystemPrompt),
		openai.UserMessage(b.String()),
	}, 700, 0.7)
}

// OptimizeResume rewrites resume text for a target role.
func (m *Mentor) OptimizeResume(ctx context.Context, resumeText, targetRole string) (string, error) {
	if m == nil {
		return "", ErrNotConfigured
	}

	var b strings.Builder
	b.WriteString("Improve the following resume text. Strengthen weak bullet points, quantify impact where plausible and fix passive phrasing.")
	if targetRole != "" {
		fmt.Fprintf(&b, " Optimize it for a %s role.", targetRole)
	}
	b.WriteString("\n\nResume:\n")
	b.WriteString(truncate(resumeText, 6000))

	return m.complete(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(mentorSystemPrompt),
		openai.UserMessage(b.String()),
	}, 1200, 0.5)
}

// ReviewResume produces a short qualitative review of extracted resume text.
func (m *Mentor) ReviewResume(ctx context.Context, resumeText string) (string, error) {
	if m == nil {
		return "", ErrNotConfigured
	}

	prompt := "Review this resume and give the candidate 3 to 5 specific improvements, each one sentence. Then give an overall impression in one sentence.\n\nResume:\n" + truncate(resumeText, 6000)

	return m.complete(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(mentorSystemPrompt),
		openai.UserMessage(prompt),
	}, 500, 0.5)
}

func (m *Mentor) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, maxTokens int64, temperature float64) (string, error) {
	completion, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       m.model,
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// truncate caps s at max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
