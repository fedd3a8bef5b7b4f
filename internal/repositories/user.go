package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
	"modernc.org/sqlite"
)

// sqliteUniqueViolation is the SQLITE_CONSTRAINT_UNIQUE extended result code.
const sqliteUniqueViolation = 2067

var (
	// ErrUsernameExists is returned when the users.username index rejects an insert.
	ErrUsernameExists = errors.New("username already exists")
	// ErrEmailExists is returned when the users.email index rejects an insert.
	ErrEmailExists = errors.New("email already exists")
)

// mapUniqueError converts a SQLite unique-constraint failure to the
// column-specific sentinel, leaving other errors untouched.
func mapUniqueError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteUniqueViolation {
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "users.username"):
			return ErrUsernameExists
		case strings.Contains(msg, "users.email"):
			return ErrEmailExists
		}
	}
	return err
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the full user record, password hash included,
// or nil when no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash
		FROM users
		WHERE username = ?
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns password-free user summaries ordered by username ascending.
// Non-empty filter fields narrow the result by substring match.
func (r *UserReadRepository) List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error) {
	query := `SELECT id, username, email FROM users WHERE 1=1`
	var args []any

	if filter.Username != "" {
		query += ` AND username LIKE ?`
		args = append(args, "%"+filter.Username+"%")
	}
	if filter.Email != "" {
		query += ` AND email LIKE ?`
		args = append(args, "%"+filter.Email+"%")
	}
	query += ` ORDER BY username ASC`

	var users []models.UserSummary
	err := r.db.SelectContext(ctx, &users, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its generated id. Uniqueness
// violations come back as ErrUsernameExists or ErrEmailExists.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password_hash)
		VALUES (?, ?, ?)
	`
	args := []any{username, email, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		return 0, mapUniqueError(err)
	}
	return res.LastInsertId()
}

// UpdatePassword overwrites the stored hash and reports whether a row changed.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) (bool, error) {
	const query = `UPDATE users SET password_hash = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, passwordHash, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Delete removes the user row; sessions, messages and scores go with it
// through the cascade. Reports whether a row was deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, userID int64) (bool, error) {
	const query = `DELETE FROM users WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
