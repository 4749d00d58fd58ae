package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/delicious-backend/internal/auth"
	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// NewResetTokenInvalidError reports a reset token that is unknown, already
// used or expired. Every call returns a new value.
func NewResetTokenInvalidError() *domain.ValidationError {
	return domain.NewValidationError("token", "password reset is invalid or has expired")
}

// ForgotPassword issues a one-time reset token and mails a reset link to
// the account owner. Unknown emails are not reported so that the response
// does not reveal which addresses are registered.
func (s *Service) ForgotPassword(ctx context.Context, input ForgotPasswordInput) error {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("auth.ForgotPassword get user: %w", err)
	}

	raw, hash, err := s.jwt.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword generate token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(s.cfg.ResetTokenTTL)
	if _, err := s.resets.Create(ctx, user.ID, hash, expiresAt); err != nil {
		return fmt.Errorf("auth.ForgotPassword store token: %w", err)
	}

	if err := s.mail.SendPasswordReset(ctx, user.Email, s.resetURL(raw)); err != nil {
		return fmt.Errorf("auth.ForgotPassword send mail: %w", err)
	}

	s.log.InfoContext(ctx, "password reset issued",
		slog.String("user_id", user.ID.String()),
		slog.Time("expires_at", expiresAt))

	return nil
}

// ResetPassword sets a new password using a reset token and logs the user
// in. The token is consumed atomically with the password change.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) (*AuthResult, error) {
	input.Token = strings.TrimSpace(input.Token)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.ResetPassword hash password: %w", err)
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reset, err := s.resets.GetActiveByHash(txCtx, auth.HashToken(input.Token))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return NewResetTokenInvalidError()
			}
			return fmt.Errorf("get reset token: %w", err)
		}

		if err := s.resets.MarkUsed(txCtx, reset.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return NewResetTokenInvalidError()
			}
			return fmt.Errorf("consume reset token: %w", err)
		}

		if err := s.users.UpdatePassword(txCtx, reset.UserID, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}

		user, err = s.users.GetByID(txCtx, reset.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset completed",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

func (s *Service) resetURL(raw string) string {
	return strings.TrimRight(s.cfg.ResetBaseURL, "/") + "/" + url.PathEscape(raw)
}
