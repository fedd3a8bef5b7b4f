package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type values carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrWrongTokenUse = errors.New("token used for wrong purpose")
	ErrTokenRevoked  = errors.New("refresh token revoked or expired")
)

// Claims is the JWT payload: the request-scoped identity passed to services.
type Claims struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair is an access token plus the refresh token that renews it.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// TokenStore keeps refresh token IDs until they expire or are revoked.
type TokenStore interface {
	Store(ctx context.Context, jti string, userID int64, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string) error
}

// JWT issues and validates HS256 tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	Exp        time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
	store      TokenStore    // Tracks live refresh tokens; nil disables refresh
}

// New creates a JWT instance without refresh support.
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// NewWithStore creates a JWT instance that also issues refresh tokens,
// recording their IDs in the given store.
func NewWithStore(secretKey string, expiration, refreshExpiration time.Duration, store TokenStore) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		Exp:        expiration,
		RefreshExp: refreshExpiration,
		store:      store,
	}
}

// Generate creates an access token for the given identity.
func (j *JWT) Generate(ctx context.Context, userID int64, username string, isAdmin bool) (string, error) {
	return j.sign(userID, username, isAdmin, TokenTypeAccess, j.Exp, "")
}

// GeneratePair creates an access/refresh token pair and stores the refresh
// token ID. Without a store only the access token is issued.
func (j *JWT) GeneratePair(ctx context.Context, userID int64, username string, isAdmin bool) (*TokenPair, error) {
	access, err := j.sign(userID, username, isAdmin, TokenTypeAccess, j.Exp, "")
	if err != nil {
		return nil, err
	}

	if j.store == nil {
		return &TokenPair{AccessToken: access}, nil
	}

	jti := uuid.NewString()
	refresh, err := j.sign(userID, username, isAdmin, TokenTypeRefresh, j.RefreshExp, jti)
	if err != nil {
		return nil, err
	}
	if err := j.store.Store(ctx, jti, userID, j.RefreshExp); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token, revokes it, and issues a new pair.
func (j *JWT) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if j.store == nil {
		return nil, ErrInvalidToken
	}

	claims, err := j.parse(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrWrongTokenUse
	}

	ok, err := j.store.Exists(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTokenRevoked
	}
	if err := j.store.Revoke(ctx, claims.ID); err != nil {
		return nil, err
	}

	return j.GeneratePair(ctx, claims.UserID, claims.Username, claims.IsAdmin)
}

// Validate checks that the token is a valid access token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses the token string and returns its claims if it is a valid
// access token.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrWrongTokenUse
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

func (j *JWT) sign(userID int64, username string, isAdmin bool, tokenType string, ttl time.Duration, jti string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		Username:  username,
		IsAdmin:   isAdmin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

func (j *JWT) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	// Malformed, expired and badly signed tokens all come back from the
	// library as distinct errors; callers only need to know the token is
	// unusable.
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
