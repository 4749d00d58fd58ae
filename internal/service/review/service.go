package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/pkg/ctxutil"
)

// MaxTextLength is the longest review text accepted, in characters.
const MaxTextLength = 2000

type reviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
}

type listingRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides review operations.
type Service struct {
	reviews  reviewRepo
	listings listingRepo
	log      *slog.Logger
}

// NewService creates a new Review service.
func NewService(log *slog.Logger, reviews reviewRepo, listings listingRepo) *Service {
	return &Service{
		reviews:  reviews,
		listings: listings,
		log:      log.With("service", "review"),
	}
}

// AddReviewInput holds the parameters for reviewing a listing.
type AddReviewInput struct {
	ListingID uuid.UUID
	Text      string
	Rating    int
}

// Validate checks all fields and collects all errors.
func (i AddReviewInput) Validate() error {
	var errs domain.ValidationError

	if i.ListingID == uuid.Nil {
		errs.Add("listing_id", "required")
	}
	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs.Add("text", "required")
	} else if utf8.RuneCountInString(text) > MaxTextLength {
		errs.Add("text", "max 2000 characters")
	}
	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs.Add("rating", "must be between 1 and 5")
	}

	return errs.OrNil()
}

// AddReview attaches a review by the authenticated user to an existing
// listing.
func (s *Service) AddReview(ctx context.Context, input AddReviewInput) (*domain.Review, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.listings.Exists(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("listing %s: %w", input.ListingID, domain.ErrNotFound)
	}

	created, err := s.reviews.Create(ctx, &domain.Review{
		ID:        uuid.New(),
		AuthorID:  userID,
		ListingID: input.ListingID,
		Text:      strings.TrimSpace(input.Text),
		Rating:    input.Rating,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.InfoContext(ctx, "review added",
		slog.String("user_id", userID.String()),
		slog.String("listing_id", input.ListingID.String()),
		slog.Int("rating", input.Rating),
	)

	return created, nil
}
