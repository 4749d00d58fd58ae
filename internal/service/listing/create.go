package listing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/pkg/ctxutil"
)

// CreateListing creates a listing owned by the authenticated user and
// assigns it a unique slug derived from the name.
func (s *Service) CreateListing(ctx context.Context, input CreateListingInput) (*domain.Listing, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	l := &domain.Listing{
		ID:          uuid.New(),
		AuthorID:    userID,
		Name:        domain.NormalizeName(input.Name),
		Description: strings.TrimSpace(input.Description),
		Tags:        domain.NormalizeTags(input.Tags),
		Photo:       domain.TrimOrNil(input.Photo),
		Location:    input.Location.toDomain(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Listing
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		slug, err := s.nextSlug(txCtx, l.Name, "")
		if err != nil {
			return err
		}
		l.Slug = slug

		created, err = s.listings.Create(txCtx, l)
		if err != nil {
			return fmt.Errorf("create listing: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "listing created",
		slog.String("user_id", userID.String()),
		slog.String("listing_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}

// nextSlug reads the current slugs sharing the name's token and picks the
// next free one. ownSlug is excluded from the snapshot so that a listing
// renamed back to its own token keeps its slug.
func (s *Service) nextSlug(ctx context.Context, name, ownSlug string) (string, error) {
	existing, err := s.listings.SlugsLike(ctx, domain.Slugify(name))
	if err != nil {
		return "", fmt.Errorf("read slugs: %w", err)
	}
	if ownSlug != "" {
		filtered := make([]string, 0, len(existing))
		for _, slug := range existing {
			if !strings.EqualFold(slug, ownSlug) {
				filtered = append(filtered, slug)
			}
		}
		existing = filtered
	}
	return domain.AssignSlug(existing, name), nil
}
