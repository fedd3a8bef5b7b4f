package models

import "time"

// ChatSession represents one saved conversation tied to a user and a model.
type ChatSession struct {
	SessionID int64     `json:"session_id" db:"session_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	ModelName string    `json:"model_name" db:"model_name"`
	StartedAt time.Time `json:"started_at" db:"started_at"`
}

// ChatMessage is a single turn inside a session. Immutable after creation.
type ChatMessage struct {
	MessageID int64     `json:"message_id" db:"message_id"`
	SessionID int64     `json:"session_id" db:"session_id"`
	Role      string    `json:"role" db:"role"` // "user" or "assistant"
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SessionWithMessages groups a session with its ordered messages,
// as returned by chat history search.
type SessionWithMessages struct {
	SessionID int64         `json:"session_id"`
	Username  string        `json:"username"`
	ModelName string        `json:"model_name"`
	StartedAt time.Time     `json:"started_at"`
	Messages  []ChatMessage `json:"messages"`
}
