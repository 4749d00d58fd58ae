package listing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/config"
	"github.com/heartmarshall/delicious-backend/internal/domain"
)

type listingRepo interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Listing, error)
	SlugsLike(ctx context.Context, token string) ([]string, error)

	// Browsing
	List(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error)
	Count(ctx context.Context, f domain.ListingFilter) (int, error)
	TagCounts(ctx context.Context) ([]domain.TagCount, error)
	Top(ctx context.Context, minReviews, limit int) ([]domain.TopListing, error)
	Search(ctx context.Context, q string, limit int) ([]domain.Listing, error)
	Nearby(ctx context.Context, lng, lat, radiusM float64, limit int) ([]domain.NearbyListing, error)
}

type reviewRepo interface {
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.Review, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides listing lifecycle and browsing operations.
type Service struct {
	listings listingRepo
	reviews  reviewRepo
	tx       txManager
	cfg      config.ListingsConfig
	log      *slog.Logger
}

// NewService creates a new Listing service.
func NewService(
	log *slog.Logger,
	listings listingRepo,
	reviews reviewRepo,
	tx txManager,
	cfg config.ListingsConfig,
) *Service {
	return &Service{
		listings: listings,
		reviews:  reviews,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "listing"),
	}
}

// TagPage is the tag browsing view: every tag with its count, the selected
// tag and the listings carrying it.
type TagPage struct {
	Tags  []domain.TagCount
	Tag   string
	Items []domain.Listing
}
