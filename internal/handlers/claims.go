package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
)

// tokener is the minimal token surface protected handlers rely on. Each
// handler still declares its own exported variant for mock generation.
type tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type unauthorizedResponse struct {
	Error string `json:"error"`
}

// claimsFromRequest extracts and validates the bearer token, writing a 401
// response itself when the request is not authenticated.
func claimsFromRequest(w http.ResponseWriter, r *http.Request, tokenGetter tokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(unauthorizedResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(unauthorizedResponse{Error: "Unauthorized"})
		return nil, false
	}

	return claims, true
}
