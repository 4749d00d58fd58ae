// Package seeder loads sample users, listings and reviews through the
// service layer, so seeded data passes the same validation and slug
// assignment as data created over HTTP.
package seeder

import (
	"context"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/internal/service/auth"
	"github.com/heartmarshall/delicious-backend/internal/service/listing"
	"github.com/heartmarshall/delicious-backend/internal/service/review"
)

// Accounts registers sample users. Implemented by auth.Service.
type Accounts interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
}

// UserLookup resolves users that already exist. Implemented by the user repo.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Listings creates sample listings. Implemented by listing.Service.
type Listings interface {
	CreateListing(ctx context.Context, input listing.CreateListingInput) (*domain.Listing, error)
}

// Reviews adds sample reviews. Implemented by review.Service.
type Reviews interface {
	AddReview(ctx context.Context, input review.AddReviewInput) (*domain.Review, error)
}

// Deps groups the collaborators of the pipeline.
type Deps struct {
	Accounts Accounts
	Users    UserLookup
	Listings Listings
	Reviews  Reviews
}
