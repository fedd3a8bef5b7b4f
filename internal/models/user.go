package models

// Role values stored in chat_messages.role
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	Username     string `json:"username" db:"username"` // Unique username
	Email        string `json:"email" db:"email"`       // Unique email
	PasswordHash string `json:"-" db:"password_hash"`   // Hashed password, never serialized
}

// UserSummary is the password-free projection returned by user listings.
type UserSummary struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}
