package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
	"github.com/stephenzhang0529/ai-app-server/internal/services"
)

// UsersTokener defines only the token methods needed by the user admin handlers.
type UsersTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserLister defines the interface that the user listing service must implement.
type UserLister interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error)
}

// UserDeleter defines the interface that the user deletion service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userID int64) (bool, error)
}

// ListUsersResponse represents the user listing response
// swagger:model ListUsersResponse
type ListUsersResponse struct {
	// Registered users
	Users []models.UserSummary `json:"users"`
}

// UsersErrorResponse represents an error response for user admin endpoints
// swagger:model UsersErrorResponse
type UsersErrorResponse struct {
	// Error message
	// default: Forbidden
	Error string `json:"error"`
}

// DeleteUserResponse represents a successful user deletion
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Success message
	// default: User deleted
	Message string `json:"message"`
}

// NewListUsersHandler returns an HTTP handler that lists registered users.
// Admin only; password hashes are never included.
// @Summary List users
// @Description Returns all registered users, optionally filtered by username or email substring. Admin only.
// @Tags users
// @Produce json
// @Param username query string false "Username substring filter"
// @Param email query string false "Email substring filter"
// @Success 200 {object} handlers.ListUsersResponse "Users returned"
// @Failure 401 {object} handlers.UsersErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UsersErrorResponse "Forbidden"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(
	svc UserLister,
	tokenGetter UsersTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		if !claims.IsAdmin {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(UsersErrorResponse{
				Error: "Forbidden",
			})
			return
		}

		filter := models.UserFilter{
			Username: r.URL.Query().Get("username"),
			Email:    r.URL.Query().Get("email"),
		}

		users, err := svc.ListUsers(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListUsersResponse{Users: users})
	}
}

// NewDeleteUserHandler returns an HTTP handler that deletes a user account
// together with its chat sessions and scores. Admins can delete anyone,
// regular users only themselves.
// @Summary Delete user
// @Description Deletes a user and cascades to their chat history and game scores.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.DeleteUserResponse "User deleted"
// @Failure 400 {object} handlers.UsersErrorResponse "Invalid user ID"
// @Failure 401 {object} handlers.UsersErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UsersErrorResponse "Forbidden"
// @Failure 404 {object} handlers.UsersErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(
	svc UserDeleter,
	tokenGetter UsersTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r, tokenGetter)
		if !ok {
			return
		}

		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || userID <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UsersErrorResponse{
				Error: "Invalid user ID",
			})
			return
		}

		if !claims.IsAdmin && claims.UserID != userID {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(UsersErrorResponse{
				Error: "Forbidden",
			})
			return
		}

		deleted, err := svc.DeleteUser(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UsersErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to delete user", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UsersErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}
		if !deleted {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UsersErrorResponse{
				Error: "User not found",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteUserResponse{
			Message: "User deleted",
		})
	}
}
