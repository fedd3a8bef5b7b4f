package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
)

// HistoryTokener defines only the token methods needed by this handler.
type HistoryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionSaver defines the interface that the history service must implement.
type SessionSaver interface {
	SaveSession(ctx context.Context, userID int64, modelName string, messages []string) error
}

// SaveSessionRequest represents the JSON body for saving a chat session.
// Messages alternate user/assistant starting with the user.
// swagger:model SaveSessionRequest
type SaveSessionRequest struct {
	// Model that produced the conversation
	// required: true
	// default: deepseek-ai/DeepSeek-V3
	ModelName string `json:"model_name"`

	// Conversation turns in display order
	// required: true
	Messages []string `json:"messages"`
}

// SaveSessionResponse represents a successful session save
// swagger:model SaveSessionResponse
type SaveSessionResponse struct {
	// Success message
	// default: Session saved
	Message string `json:"message"`
}

// SaveSessionErrorResponse represents an error response for session saving
// swagger:model SaveSessionErrorResponse
type SaveSessionErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewSaveSessionHandler returns an HTTP handler that records a finished chat
// conversation. The session row and all message rows are written in one
// transaction; a failed request leaves no partial session behind.
// @Summary Save chat session
// @Description Persists a conversation as a session plus ordered messages. Even-indexed turns are stored as user messages, odd-indexed as assistant.
// @Tags history
// @Accept json
// @Produce json
// @Param saveSessionRequest body handlers.SaveSessionRequest true "Session to save"
// @Success 201 {object} handlers.SaveSessionResponse "Session saved"
// @Failure 400 {object} handlers.SaveSessionErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.SaveSessionErrorResponse "Unauthorized"
// @Router /history [post]
// @Security BearerAuth
func NewSaveSessionHandler(
	svc SessionSaver,
	tokenGetter HistoryTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		var req SaveSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SaveSessionErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.ModelName == "" || len(req.Messages) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SaveSessionErrorResponse{
				Error: "Model name and messages are required",
			})
			return
		}

		if err := svc.SaveSession(r.Context(), claims.UserID, req.ModelName, req.Messages); err != nil {
			logger.Log.Errorw("failed to save session", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SaveSessionErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SaveSessionResponse{
			Message: "Session saved",
		})
	}
}
