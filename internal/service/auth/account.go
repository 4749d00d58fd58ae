package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/pkg/ctxutil"
)

// Me returns the authenticated user with their favorites.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	favs, err := s.users.FavoriteIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me favorites: %w", err)
	}
	user.Favorites = favs

	return user, nil
}

// UpdateAccount changes the authenticated user's name and email.
// Returns ErrAlreadyExists if the new email belongs to another account.
func (s *Service) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Email = domain.NormalizeEmail(input.Email)
	input.Name = domain.NormalizeName(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Update(ctx, userID, input.Name, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateAccount: %w", err)
	}
	favs, err := s.users.FavoriteIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.UpdateAccount favorites: %w", err)
	}
	user.Favorites = favs

	s.log.InfoContext(ctx, "account updated",
		slog.String("user_id", userID.String()))

	return user, nil
}
