package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
)

// Refresher defines the interface that the token refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
}

// RefreshRequest represents the JSON body for token refresh
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token issued at login
	// required: true
	// default: REFRESH_TOKEN
	RefreshToken string `json:"refresh_token"`
}

// RefreshErrorResponse represents an error response for token refresh
// swagger:model RefreshErrorResponse
type RefreshErrorResponse struct {
	// Error message
	// default: Invalid or expired refresh token
	Error string `json:"error"`
}

// NewRefreshHandler returns an HTTP handler that rotates a refresh token
// into a new token pair.
// @Summary Refresh tokens
// @Description Exchanges a valid refresh token for a new access/refresh pair. The old refresh token is revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh Request"
// @Success 200 {object} handlers.LoginResponse "New token pair returned"
// @Failure 400 {object} handlers.RefreshErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.RefreshErrorResponse "Invalid or expired refresh token"
// @Router /refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RefreshErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		pair, err := svc.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrInvalidToken),
				errors.Is(err, jwt.ErrWrongTokenUse),
				errors.Is(err, jwt.ErrTokenRevoked):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(RefreshErrorResponse{
					Error: "Invalid or expired refresh token",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RefreshErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		})
	}
}
