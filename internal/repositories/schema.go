package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// timeLayout is the SQLite-native timestamp format. All timestamps are
// stored as UTC text so DATE() and lexicographic ordering behave.
const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

// CreateSchema creates all tables and indexes if they do not exist.
// Ownership is enforced by ON DELETE CASCADE foreign keys; the connection
// must have foreign_keys enabled (see the DSN pragma in cmd/main.go).
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_username ON users (username);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_email ON users (email);

	CREATE TABLE IF NOT EXISTS chat_sessions (
		session_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		model_name TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS chat_messages (
		message_id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (session_id) REFERENCES chat_sessions (session_id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS game_high_scores (
		score_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		game_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		played_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
	);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}
