package services

import (
	"context"

	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
)

// defaultLeaderboardLimit caps leaderboards when the caller passes no limit.
const defaultLeaderboardLimit = 10

// ScoreWriter appends game scores.
type ScoreWriter interface {
	Save(ctx context.Context, userID int64, gameName string, score int64) error
}

// ScoreReader reads ranked leaderboards.
type ScoreReader interface {
	Top(ctx context.Context, gameName string, limit int) ([]models.LeaderboardEntry, error)
}

// LeaderboardService records game scores and serves per-game rankings.
type LeaderboardService struct {
	writer ScoreWriter
	reader ScoreReader
	events KafkaWriter
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(writer ScoreWriter, reader ScoreReader, events KafkaWriter) *LeaderboardService {
	return &LeaderboardService{
		writer: writer,
		reader: reader,
		events: events,
	}
}

// RecordScore appends one finished game's score. No range validation.
func (s *LeaderboardService) RecordScore(ctx context.Context, userID int64, gameName string, score int64) error {
	if err := s.writer.Save(ctx, userID, gameName, score); err != nil {
		logger.Log.Errorw("failed to record score", "userID", userID, "game", gameName, "score", score, "error", err)
		return err
	}

	publishActivity(ctx, s.events, userID, models.ActionScoreRecorded, gameName)
	return nil
}

// TopScores returns the ranked leaderboard for a game, truncated to limit
// (defaulting when limit is not positive).
func (s *LeaderboardService) TopScores(ctx context.Context, gameName string, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	entries, err := s.reader.Top(ctx, gameName, limit)
	if err != nil {
		logger.Log.Errorw("failed to get leaderboard", "game", gameName, "error", err)
		return nil, err
	}
	return entries, nil
}
