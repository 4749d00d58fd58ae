// Package favorite implements the heart toggle and the hearted listings view.
package favorite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FavoriteIDs(ctx context.Context, userID uuid.UUID) (domain.Favorites, error)
	ToggleFavorite(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
}

type listingRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]domain.Listing, error)
}

// Service provides favorite operations.
type Service struct {
	users    userRepo
	listings listingRepo
	log      *slog.Logger
}

// NewService creates a new Favorite service.
func NewService(log *slog.Logger, users userRepo, listings listingRepo) *Service {
	return &Service{
		users:    users,
		listings: listings,
		log:      log.With("service", "favorite"),
	}
}

// ToggleResult is the outcome of a heart toggle.
type ToggleResult struct {
	User  *domain.User
	Added bool
}

// Toggle adds listingID to the authenticated user's favorites if absent and
// removes it if present. The flip is a single atomic write, so concurrent
// toggles never leave duplicates behind.
func (s *Service) Toggle(ctx context.Context, listingID uuid.UUID) (*ToggleResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if listingID == uuid.Nil {
		return nil, domain.NewValidationError("listing_id", "required")
	}

	exists, err := s.listings.Exists(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("listing %s: %w", listingID, domain.ErrNotFound)
	}

	added, err := s.users.ToggleFavorite(ctx, userID, listingID)
	if err != nil {
		return nil, fmt.Errorf("toggle favorite: %w", err)
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "favorite toggled",
		slog.String("user_id", userID.String()),
		slog.String("listing_id", listingID.String()),
		slog.Bool("added", added),
	)

	return &ToggleResult{User: user, Added: added}, nil
}

// Hearts returns the listings the authenticated user has hearted.
func (s *Service) Hearts(ctx context.Context) ([]domain.Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.listings.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return items, nil
}

func (s *Service) loadUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	favs, err := s.users.FavoriteIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	user.Favorites = favs
	return user, nil
}
