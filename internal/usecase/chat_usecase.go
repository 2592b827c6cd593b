package usecase

import (
	"context"
	"errors"
	"strings"

	"go-career-mentor-backend/internal/ai"
	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/pkg/apperror"

	"github.com/google/uuid"
)

// MentorClient is the slice of the AI client the conversational flows need.
type MentorClient interface {
	Chat(ctx context.Context, history []domain.ChatMessage, message string) (string, error)
}

// History window sent back to the model on each turn.
const chatHistoryLimit = 20

type chatUsecase struct {
	chatRepo domain.ChatRepository
	mentor   MentorClient
}

func NewChatUsecase(chatRepo domain.ChatRepository, mentor MentorClient) domain.ChatUsecase {
	return &chatUsecase{chatRepo: chatRepo, mentor: mentor}
}

func (u *chatUsecase) SendMessage(ctx context.Context, userID int64, sessionID, message string) (*domain.ChatMessage, string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, "", apperror.BadRequest("Message must not be empty")
	}

	var history []domain.ChatMessage
	if sessionID == "" {
		session := &domain.ChatSession{
			SessionID: uuid.New().String(),
			UserID:    userID,
			Title:     sessionTitle(message),
		}
		if err := u.chatRepo.CreateSession(ctx, session); err != nil {
			return nil, "", err
		}
		sessionID = session.SessionID
	} else {
		session, err := u.chatRepo.GetSession(ctx, sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, "", apperror.NotFound("Chat session not found")
			}
			return nil, "", err
		}
		if session.UserID != userID {
			return nil, "", apperror.Forbidden("Chat session belongs to another user")
		}
		history, err = u.chatRepo.ListMessages(ctx, sessionID, chatHistoryLimit)
		if err != nil {
			return nil, "", err
		}
	}

	userMsg := &domain.ChatMessage{SessionID: sessionID, Role: "user", Content: message}
	if err := u.chatRepo.AppendMessage(ctx, userMsg); err != nil {
		return nil, "", err
	}

	replyText, err := u.mentor.Chat(ctx, history, message)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return nil, "", apperror.Unavailable("AI mentor is not configured")
		}
		return nil, "", err
	}

	reply := &domain.ChatMessage{SessionID: sessionID, Role: "ai", Content: replyText}
	if err := u.chatRepo.AppendMessage(ctx, reply); err != nil {
		return nil, "", err
	}
	if err := u.chatRepo.TouchSession(ctx, sessionID, ""); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	return reply, sessionID, nil
}

func (u *chatUsecase) ListSessions(ctx context.Context, userID int64) ([]domain.ChatSession, error) {
	return u.chatRepo.ListSessionsByUser(ctx, userID)
}

func (u *chatUsecase) ListMessages(ctx context.Context, userID int64, sessionID string) ([]domain.ChatMessage, error) {
	session, err := u.chatRepo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Chat session not found")
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, apperror.Forbidden("Chat session belongs to another user")
	}
	return u.chatRepo.ListMessages(ctx, sessionID, 200)
}

// sessionTitle derives a short title from the opening message.
func sessionTitle(message string) string {
	const max = 60
	if len(message) <= max {
		return message
	}
	cut := strings.LastIndex(message[:max], " ")
	if cut <= 0 {
		cut = max
	}
	return message[:cut] + "..."
}
