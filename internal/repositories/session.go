package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/middlewares"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
)

type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Save persists one finished conversation: a chat_sessions row plus one
// chat_messages row per entry, role assigned by index parity (even =>
// user, odd => assistant). All rows commit or roll back together; the
// transaction comes from the request context when the tx middleware is
// active, otherwise the repository opens its own.
func (r *SessionWriteRepository) Save(ctx context.Context, userID int64, modelName string, messages []string) error {
	tx := middlewares.GetTxFromContext(ctx)
	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = r.db.BeginTxx(ctx, nil)
		if err != nil {
			logger.Log.Errorw("failed to begin session transaction", "error", err)
			return err
		}
		defer tx.Rollback()
	}

	now := formatTime(time.Now())

	res, err := tx.ExecContext(ctx,
		`INSERT INTO chat_sessions (user_id, model_name, started_at) VALUES (?, ?, ?)`,
		userID, modelName, now,
	)
	if err != nil {
		logger.Log.Errorw("failed to insert chat session", "user_id", userID, "model", modelName, "error", err)
		return err
	}
	sessionID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i, content := range messages {
		role := models.RoleUser
		if i%2 != 0 {
			role = models.RoleAssistant
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chat_messages (session_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
			sessionID, role, content, now,
		); err != nil {
			logger.Log.Errorw("failed to insert chat message", "session_id", sessionID, "index", i, "error", err)
			return err
		}
	}

	logger.Log.Infow("chat session saved",
		"session_id", sessionID,
		"user_id", userID,
		"model", modelName,
		"messages", len(messages),
	)

	if ownTx {
		return tx.Commit()
	}
	return nil
}

type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// searchRow is one joined message row before grouping.
type searchRow struct {
	SessionID int64  `db:"session_id"`
	Username  string `db:"username"`
	ModelName string `db:"model_name"`
	StartedAt string `db:"started_at"`
	MessageID int64  `db:"message_id"`
	Role      string `db:"role"`
	Content   string `db:"content"`
	CreatedAt string `db:"created_at"`
}

// Search returns sessions with their ordered messages: sessions newest
// first, messages in insertion order.
func (r *SessionReadRepository) Search(ctx context.Context, p models.SessionQuery) ([]models.SessionWithMessages, error) {
	query := `
		SELECT
			cs.session_id,
			u.username,
			cs.model_name,
			cs.started_at,
			cm.message_id,
			cm.role,
			cm.content,
			cm.created_at
		FROM chat_messages cm
		JOIN chat_sessions cs ON cm.session_id = cs.session_id
		JOIN users u ON cs.user_id = u.id
		WHERE 1=1
	`
	var args []any

	if p.UserID != nil {
		query += ` AND cs.user_id = ?`
		args = append(args, *p.UserID)
	}
	if p.Keyword != "" {
		query += ` AND cm.content LIKE ?`
		args = append(args, "%"+p.Keyword+"%")
	}
	if p.Model != "" {
		query += ` AND cs.model_name = ?`
		args = append(args, p.Model)
	}
	if p.Date != "" {
		query += ` AND DATE(cs.started_at) = ?`
		args = append(args, p.Date)
	}
	if p.User != "" {
		query += ` AND u.username LIKE ?`
		args = append(args, "%"+p.User+"%")
	}

	query += ` ORDER BY cs.started_at DESC, cs.session_id DESC, cm.created_at ASC, cm.message_id ASC`

	var rows []searchRow
	err := r.db.SelectContext(ctx, &rows, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	// Group rows per session, preserving the row order.
	var results []models.SessionWithMessages
	index := make(map[int64]int)
	for _, row := range rows {
		i, ok := index[row.SessionID]
		if !ok {
			results = append(results, models.SessionWithMessages{
				SessionID: row.SessionID,
				Username:  row.Username,
				ModelName: row.ModelName,
				StartedAt: parseTime(row.StartedAt),
			})
			i = len(results) - 1
			index[row.SessionID] = i
		}
		results[i].Messages = append(results[i].Messages, models.ChatMessage{
			MessageID: row.MessageID,
			SessionID: row.SessionID,
			Role:      row.Role,
			Content:   row.Content,
			CreatedAt: parseTime(row.CreatedAt),
		})
	}

	return results, nil
}
