package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// GetListing returns a listing by id.
func (s *Service) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// GetBySlug returns a listing with its reviews, newest first.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.ListingDetail, error) {
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}

	l, err := s.listings.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get listing by slug: %w", err)
	}

	reviews, err := s.reviews.ListByListing(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return &domain.ListingDetail{Listing: *l, Reviews: reviews}, nil
}
