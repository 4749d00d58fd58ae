package listing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/pkg/ctxutil"
)

// UpdateListing applies a partial update. Only the author may edit a
// listing; the slug is regenerated only when the name actually changes.
func (s *Service) UpdateListing(ctx context.Context, input UpdateListingInput) (*domain.Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Listing
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.listings.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get listing: %w", err)
		}
		if !current.IsOwnedBy(userID) {
			return fmt.Errorf("listing %s: %w", input.ID, domain.ErrNotListingOwner)
		}

		next := *current
		if input.Name != nil {
			name := domain.NormalizeName(*input.Name)
			if name != current.Name {
				next.Name = name
				next.Slug, err = s.nextSlug(txCtx, name, current.Slug)
				if err != nil {
					return err
				}
			}
		}
		if input.Description != nil {
			next.Description = strings.TrimSpace(*input.Description)
		}
		if input.Tags != nil {
			next.Tags = domain.NormalizeTags(*input.Tags)
		}
		if input.Photo != nil {
			next.Photo = domain.TrimOrNil(input.Photo)
		}
		if input.Location != nil {
			next.Location = input.Location.toDomain()
		}

		updated, err = s.listings.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update listing: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "listing updated",
		slog.String("user_id", userID.String()),
		slog.String("listing_id", updated.ID.String()),
		slog.String("slug", updated.Slug),
	)

	return updated, nil
}
