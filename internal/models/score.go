package models

import "time"

// GameScore represents one finished game in game_high_scores.
type GameScore struct {
	ScoreID  int64     `json:"score_id" db:"score_id"`
	UserID   int64     `json:"user_id" db:"user_id"`
	GameName string    `json:"game_name" db:"game_name"`
	Score    int64     `json:"score" db:"score"`
	PlayedAt time.Time `json:"played_at" db:"played_at"`
}

// LeaderboardEntry is one ranked row of a game leaderboard.
type LeaderboardEntry struct {
	Username string    `json:"username"`
	Score    int64     `json:"score"`
	PlayedAt time.Time `json:"played_at"`
}
