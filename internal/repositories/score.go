package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
)

type ScoreWriteRepository struct {
	db *sqlx.DB
}

func NewScoreWriteRepository(db *sqlx.DB) *ScoreWriteRepository {
	return &ScoreWriteRepository{db: db}
}

// Save appends one game score. Scores are never updated in place.
func (r *ScoreWriteRepository) Save(ctx context.Context, userID int64, gameName string, score int64) error {
	const query = `
		INSERT INTO game_high_scores (user_id, game_name, score, played_at)
		VALUES (?, ?, ?, ?)
	`
	args := []any{userID, gameName, score, formatTime(time.Now())}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

type ScoreReadRepository struct {
	db *sqlx.DB
}

func NewScoreReadRepository(db *sqlx.DB) *ScoreReadRepository {
	return &ScoreReadRepository{db: db}
}

type leaderboardRow struct {
	Username string `db:"username"`
	Score    int64  `db:"score"`
	PlayedAt string `db:"played_at"`
}

// Top returns the ranked leaderboard for a game: highest score first,
// ties broken by earliest play, then by insertion order.
func (r *ScoreReadRepository) Top(ctx context.Context, gameName string, limit int) ([]models.LeaderboardEntry, error) {
	const query = `
		SELECT u.username, g.score, g.played_at
		FROM game_high_scores g
		JOIN users u ON g.user_id = u.id
		WHERE g.game_name = ?
		ORDER BY g.score DESC, g.played_at ASC, g.score_id ASC
		LIMIT ?
	`

	var rows []leaderboardRow
	err := r.db.SelectContext(ctx, &rows, query, gameName, limit)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{gameName, limit},
		"rows", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.LeaderboardEntry{
			Username: row.Username,
			Score:    row.Score,
			PlayedAt: parseTime(row.PlayedAt),
		})
	}
	return entries, nil
}
