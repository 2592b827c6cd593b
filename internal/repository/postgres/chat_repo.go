package postgres

import (
	"context"
	"errors"

	"go-career-mentor-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type chatRepo struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) domain.ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) CreateSession(ctx context.Context, session *domain.ChatSession) error {
	query := `INSERT INTO chat_sessions (session_id, user_id, title, created_at, updated_at)
	          VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, session.SessionID, session.UserID, session.Title).
		Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
}

func (r *chatRepo) GetSession(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	query := `SELECT id, session_id, user_id, title, created_at, updated_at
	          FROM chat_sessions WHERE session_id = $1`
	var s domain.ChatSession
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&s.ID, &s.SessionID, &s.UserID, &s.Title, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *chatRepo) ListSessionsByUser(ctx context.Context, userID int64) ([]domain.ChatSession, error) {
	query := `SELECT id, session_id, user_id, title, created_at, updated_at
	          FROM chat_sessions WHERE user_id = $1 ORDER BY updated_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.ChatSession, 0)
	for rows.Next() {
		var s domain.ChatSession
		if err := rows.Scan(&s.ID, &s.SessionID, &s.UserID, &s.Title, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *chatRepo) TouchSession(ctx context.Context, sessionID string, title string) error {
	query := `UPDATE chat_sessions SET title = COALESCE(NULLIF($2, ''), title), updated_at = NOW()
	          WHERE session_id = $1`
	result, err := r.db.Exec(ctx, query, sessionID, title)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *chatRepo) AppendMessage(ctx context.Context, msg *domain.ChatMessage) error {
	query := `INSERT INTO chat_messages (session_id, role, content, created_at)
	          VALUES ($1, $2, $3, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, msg.SessionID, msg.Role, msg.Content).
		Scan(&msg.ID, &msg.Timestamp)
}

func (r *chatRepo) ListMessages(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	query := `SELECT id, session_id, role, content, created_at
	          FROM chat_messages WHERE session_id = $1
	          ORDER BY created_at ASC, id ASC LIMIT $2`
	rows, err := r.db.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]domain.ChatMessage, 0)
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
