package listing

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// Paginate returns one page of listings in the configured order. page is
// coerced to at least 1. The count and the window are read concurrently,
// so an insert between the two reads may skew TotalPages by one.
func (s *Service) Paginate(ctx context.Context, page int) (domain.Page[domain.Listing], error) {
	page = domain.NormalizePage(page)
	limit := s.pageSize()

	filter := domain.ListingFilter{
		Sort:   s.sort(),
		Limit:  limit,
		Offset: domain.Offset(page, limit),
	}

	var (
		items []domain.Listing
		count int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.listings.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("list listings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		count, err = s.listings.Count(gctx, domain.ListingFilter{})
		if err != nil {
			return fmt.Errorf("count listings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Page[domain.Listing]{}, err
	}

	return domain.NewPage(items, page, limit, count), nil
}

// ListByTag returns all tag counts together with the listings carrying tag.
// A blank tag selects every listing that has at least one tag.
func (s *Service) ListByTag(ctx context.Context, tag string) (*TagPage, error) {
	tag = strings.TrimSpace(tag)

	filter := domain.ListingFilter{Sort: s.sort()}
	if tag == "" {
		filter.AnyTag = true
	} else {
		filter.Tag = &tag
	}

	result := &TagPage{Tag: tag}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tags, err := s.listings.TagCounts(gctx)
		if err != nil {
			return fmt.Errorf("tag counts: %w", err)
		}
		result.Tags = tags
		return nil
	})
	g.Go(func() error {
		items, err := s.listings.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("list by tag: %w", err)
		}
		result.Items = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// TopListings returns the best-rated listings with at least MinReviews
// reviews, highest mean rating first.
func (s *Service) TopListings(ctx context.Context) ([]domain.TopListing, error) {
	minReviews := s.cfg.MinReviews
	if minReviews <= 0 {
		minReviews = domain.DefaultMinReviews
	}
	limit := s.cfg.TopLimit
	if limit <= 0 {
		limit = domain.DefaultTopLimit
	}

	top, err := s.listings.Top(ctx, minReviews, limit)
	if err != nil {
		return nil, fmt.Errorf("top listings: %w", err)
	}
	return top, nil
}

// Search runs a full-text query over names and descriptions, best match
// first. A blank query returns no results.
func (s *Service) Search(ctx context.Context, q string) ([]domain.Listing, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []domain.Listing{}, nil
	}

	limit := s.cfg.SearchLimit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	items, err := s.listings.Search(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return items, nil
}

// Nearby returns listings with a location within the configured radius of
// the given point, nearest first.
func (s *Service) Nearby(ctx context.Context, input NearbyInput) ([]domain.NearbyListing, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	radius := s.cfg.NearbyRadiusM
	if radius <= 0 {
		radius = domain.DefaultNearbyRadiusMeters
	}
	limit := s.cfg.NearbyLimit
	if limit <= 0 {
		limit = domain.DefaultNearbyLimit
	}

	items, err := s.listings.Nearby(ctx, input.Lng, input.Lat, radius, limit)
	if err != nil {
		return nil, fmt.Errorf("nearby listings: %w", err)
	}
	return items, nil
}

func (s *Service) pageSize() int {
	if s.cfg.PageSize <= 0 {
		return domain.DefaultPageSize
	}
	return s.cfg.PageSize
}

func (s *Service) sort() domain.ListingSort {
	sort := domain.ListingSort(s.cfg.Sort)
	if !sort.IsValid() {
		return domain.ListingSortNewest
	}
	return sort
}
