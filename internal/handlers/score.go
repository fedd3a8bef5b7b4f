package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
)

// ScoreTokener defines only the token methods needed by this handler.
type ScoreTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ScoreRecorder defines the interface that the leaderboard service must implement.
type ScoreRecorder interface {
	RecordScore(ctx context.Context, userID int64, gameName string, score int64) error
}

// RecordScoreRequest represents the JSON body for recording a game score
// swagger:model RecordScoreRequest
type RecordScoreRequest struct {
	// Game identifier
	// required: true
	// default: snake
	GameName string `json:"game_name"`

	// Score achieved
	// required: true
	// default: 42
	Score int64 `json:"score"`
}

// RecordScoreResponse represents a successful score submission
// swagger:model RecordScoreResponse
type RecordScoreResponse struct {
	// Success message
	// default: Score recorded
	Message string `json:"message"`
}

// RecordScoreErrorResponse represents an error response for score submission
// swagger:model RecordScoreErrorResponse
type RecordScoreErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewRecordScoreHandler returns an HTTP handler that stores one game result.
// Every submission is kept; the leaderboard picks the best ones at read time.
// @Summary Record game score
// @Description Appends a score entry for the authenticated user.
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param recordScoreRequest body handlers.RecordScoreRequest true "Score to record"
// @Success 201 {object} handlers.RecordScoreResponse "Score recorded"
// @Failure 400 {object} handlers.RecordScoreErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.RecordScoreErrorResponse "Unauthorized"
// @Router /scores [post]
// @Security BearerAuth
func NewRecordScoreHandler(
	svc ScoreRecorder,
	tokenGetter ScoreTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		var req RecordScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RecordScoreErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if err := svc.RecordScore(r.Context(), claims.UserID, req.GameName, req.Score); err != nil {
			logger.Log.Errorw("failed to record score", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RecordScoreErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RecordScoreResponse{
			Message: "Score recorded",
		})
	}
}
