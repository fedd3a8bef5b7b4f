package services

import (
	"context"
	"errors"

	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/models"
	"github.com/stephenzhang0529/ai-app-server/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (int64, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) (bool, error)
	Delete(ctx context.Context, userID int64) (bool, error)
}

// TokenIssuer defines an interface for issuing and renewing JWT token pairs.
type TokenIssuer interface {
	GeneratePair(ctx context.Context, userID int64, username string, isAdmin bool) (*jwt.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
}

// AuthService handles registration, login, and account management.
type AuthService struct {
	reader        UserReader
	writer        UserWriter
	jwt           TokenIssuer
	events        KafkaWriter
	adminUsername string
}

// NewAuthService creates a new AuthService instance. The admin username
// decides which account carries the is_admin claim.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer, events KafkaWriter, adminUsername string) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		jwt:           jwt,
		events:        events,
		adminUsername: adminUsername,
	}
}

// Register creates a new user and returns its id. The password is
// bcrypt-hashed before it reaches storage.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (int64, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	switch {
	case errors.Is(err, repositories.ErrUsernameExists):
		logger.Log.Errorw("username already taken", "username", username)
		return 0, ErrUsernameTaken
	case errors.Is(err, repositories.ErrEmailExists):
		logger.Log.Errorw("email already registered", "email", email)
		return 0, ErrEmailTaken
	case err != nil:
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates a user and returns a JWT token pair.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*jwt.TokenPair, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	pair, err := svc.jwt.GeneratePair(ctx, user.ID, user.Username, user.Username == svc.adminUsername)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return pair, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	pair, err := svc.jwt.Refresh(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to refresh token", "err", err)
		return nil, err
	}
	return pair, nil
}

// ChangePassword unconditionally overwrites the user's password and
// reports whether a row was affected.
func (svc *AuthService) ChangePassword(ctx context.Context, userID int64, newPassword string) (bool, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return false, err
	}

	updated, err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to update password", "userID", userID, "err", err)
		return false, err
	}
	return updated, nil
}

// DeleteUser removes the user; dependent sessions, messages and scores are
// removed by the storage cascade.
func (svc *AuthService) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	deleted, err := svc.writer.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "userID", userID, "err", err)
		return false, err
	}
	if deleted {
		publishActivity(ctx, svc.events, userID, models.ActionUserDeleted, "")
	}
	return deleted, nil
}

// ListUsers returns password-free summaries ordered by username, optionally
// narrowed by a username or email substring.
func (svc *AuthService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.UserSummary, error) {
	users, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
