package domain

import (
	"context"
	"time"
)

type ChatSession struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChatMessage struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // "user" or "ai"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatRepository interface {
	CreateSession(ctx context.Context, session *ChatSession) error
	GetSession(ctx context.Context, sessionID string) (*ChatSession, error)
	ListSessionsByUser(ctx context.Context, userID int64) ([]ChatSession, error)
	TouchSession(ctx context.Context, sessionID string, title string) error
	AppendMessage(ctx context.Context, msg *ChatMessage) error
	ListMessages(ctx context.Context, sessionID string, limit int) ([]ChatMessage, error)
}

type ChatUsecase interface {
	// SendMessage appends the user message, asks the AI mentor for a reply
	// and persists both. An empty sessionID starts a new session.
	SendMessage(ctx context.Context, userID int64, sessionID, message string) (*ChatMessage, string, error)
	ListSessions(ctx context.Context, userID int64) ([]ChatSession, error)
	ListMessages(ctx context.Context, userID int64, sessionID string) ([]ChatMessage, error)
}
