package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
)

// TopScoresReader defines the interface that the leaderboard service must implement.
type TopScoresReader interface {
	TopScores(ctx context.Context, gameName string, limit int) ([]models.LeaderboardEntry, error)
}

// LeaderboardResponse represents the leaderboard response
// swagger:model LeaderboardResponse
type LeaderboardResponse struct {
	// Top scores, highest first
	Scores []models.LeaderboardEntry `json:"scores"`
}

// LeaderboardErrorResponse represents an error response for the leaderboard
// swagger:model LeaderboardErrorResponse
type LeaderboardErrorResponse struct {
	// Error message
	// default: Game name is required
	Error string `json:"error"`
}

// NewLeaderboardHandler returns an HTTP handler for the public leaderboard.
// @Summary Top scores
// @Description Returns the highest scores for a game, best first. Ties rank the earlier play higher.
// @Tags leaderboard
// @Produce json
// @Param game query string true "Game identifier"
// @Param limit query int false "Maximum entries to return (default 10)"
// @Success 200 {object} handlers.LeaderboardResponse "Top scores"
// @Failure 400 {object} handlers.LeaderboardErrorResponse "Missing game name"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc TopScoresReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameName := r.URL.Query().Get("game")
		if gameName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{
				Error: "Game name is required",
			})
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		scores, err := svc.TopScores(r.Context(), gameName, limit)
		if err != nil {
			logger.Log.Errorw("failed to load leaderboard", "game", gameName, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if scores == nil {
			scores = []models.LeaderboardEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LeaderboardResponse{Scores: scores})
	}
}
