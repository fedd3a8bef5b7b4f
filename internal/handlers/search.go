package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
	"github.com/stephenzhang0529/ai-app-server/internal/services"
)

// SearchTokener defines only the token methods needed by this handler.
type SearchTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionSearcher defines the interface that the history search service must implement.
type SessionSearcher interface {
	Search(ctx context.Context, requesterID int64, isAdmin bool, filter models.SearchFilter) ([]models.SessionWithMessages, error)
}

// SearchResponse represents the chat history search response
// swagger:model SearchResponse
type SearchResponse struct {
	// Matching sessions, newest first, each with ordered messages
	Sessions []models.SessionWithMessages `json:"sessions"`
}

// SearchErrorResponse represents an error response for history search
// swagger:model SearchErrorResponse
type SearchErrorResponse struct {
	// Error message
	// default: Invalid search filter
	Error string `json:"error"`
}

// NewSearchHandler returns an HTTP handler for chat history search.
// Non-admin callers only ever see their own sessions.
// @Summary Search chat history
// @Description Searches saved sessions by keyword, model, date (YYYY-MM-DD) or username. Username search is admin only. Results are ordered newest session first.
// @Tags history
// @Produce json
// @Param type query string true "Filter type" Enums(by_keyword, by_model, by_date, by_username, all)
// @Param value query string false "Filter value; required for every type except all"
// @Success 200 {object} handlers.SearchResponse "Matching sessions"
// @Failure 400 {object} handlers.SearchErrorResponse "Invalid search filter"
// @Failure 401 {object} handlers.SearchErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.SearchErrorResponse "Username search is admin only"
// @Router /history/search [get]
// @Security BearerAuth
func NewSearchHandler(
	svc SessionSearcher,
	tokenGetter SearchTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		filter := models.SearchFilter{
			Type:  models.SearchType(r.URL.Query().Get("type")),
			Value: r.URL.Query().Get("value"),
		}

		sessions, err := svc.Search(r.Context(), claims.UserID, claims.IsAdmin, filter)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidFilter):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SearchErrorResponse{
					Error: "Invalid search filter",
				})
			case errors.Is(err, services.ErrPermissionDenied):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(SearchErrorResponse{
					Error: "Username search is admin only",
				})
			default:
				logger.Log.Errorw("failed to search history", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SearchErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		if sessions == nil {
			sessions = []models.SessionWithMessages{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SearchResponse{Sessions: sessions})
	}
}
