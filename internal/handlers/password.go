package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/services"
)

// PasswordTokener defines only the token methods needed by this handler.
type PasswordTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID int64, newPassword string) (bool, error)
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// New password
	// required: true
	// default: newsecret123
	NewPassword string `json:"new_password"`
}

// ChangePasswordResponse represents a successful password change
// swagger:model ChangePasswordResponse
type ChangePasswordResponse struct {
	// Success message
	// default: Password updated
	Message string `json:"message"`
}

// ChangePasswordErrorResponse represents an error response for a password change
// swagger:model ChangePasswordErrorResponse
type ChangePasswordErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewChangePasswordHandler returns an HTTP handler that replaces the
// authenticated user's password.
// @Summary Change password
// @Description Replaces the caller's password. The new password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Change password request"
// @Success 200 {object} handlers.ChangePasswordResponse "Password updated"
// @Failure 400 {object} handlers.ChangePasswordErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ChangePasswordErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ChangePasswordErrorResponse "User not found"
// @Router /password [post]
// @Security BearerAuth
func NewChangePasswordHandler(
	svc PasswordChanger,
	tokenGetter PasswordTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NewPassword == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		updated, err := svc.ChangePassword(ctx, claims.UserID, req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}
		if !updated {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
				Error: "User not found",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChangePasswordResponse{
			Message: "Password updated",
		})
	}
}
