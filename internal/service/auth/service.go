package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/config"
	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, name, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	FavoriteIDs(ctx context.Context, userID uuid.UUID) (domain.Favorites, error)
}

// resetRepo defines the password reset token storage needed by auth service.
type resetRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.PasswordReset, error)
	GetActiveByHash(ctx context.Context, tokenHash string) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateResetToken() (raw string, hash string, err error)
}

// mailer delivers password reset links.
type mailer interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}

// Service implements account and authentication operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	resets resetRepo
	tx     txManager
	jwt    jwtManager
	mail   mailer
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	resets resetRepo,
	tx txManager,
	jwt jwtManager,
	mail mailer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		resets: resets,
		tx:     tx,
		jwt:    jwt,
		mail:   mail,
		cfg:    cfg,
	}
}

// AuthResult is returned by Register, Login and ResetPassword.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}

// ValidateToken verifies an access token and returns the user id it was
// issued for. Any failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CleanupExpiredResets removes expired password reset tokens. Returns the
// number of rows deleted.
func (s *Service) CleanupExpiredResets(ctx context.Context) (int, error) {
	count, err := s.resets.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "reset token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredResets: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired reset tokens", slog.Int("count", count))
	}
	return count, nil
}
