package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$seededhashnotusableforlogin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedListing inserts a listing owned by authorID. The slug gets a unique
// suffix so parallel tests never collide; pass loc=nil for a recipe-style
// listing without a location.
func SeedListing(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, name string, tags []string, loc *domain.Location) domain.Listing {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if tags == nil {
		tags = []string{}
	}
	l := domain.Listing{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        name,
		Slug:        domain.Slugify(name) + "-" + uniqueSuffix(),
		Description: "Seeded description for " + name,
		Tags:        tags,
		Location:    loc,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var lng, lat *float64
	var address *string
	if loc != nil {
		lng, lat, address = &loc.Lng, &loc.Lat, &loc.Address
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO listings (id, author_id, name, slug, description, tags, lng, lat, address, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.AuthorID, l.Name, l.Slug, l.Description, l.Tags, lng, lat, address, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedListing insert: %v", err)
	}

	return l
}

// SeedReview inserts a review with the given rating.
func SeedReview(t *testing.T, pool *pgxpool.Pool, authorID, listingID uuid.UUID, rating int) domain.Review {
	t.Helper()
	ctx := context.Background()

	r := domain.Review{
		ID:        uuid.New(),
		AuthorID:  authorID,
		ListingID: listingID,
		Text:      "seeded review",
		Rating:    rating,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO reviews (id, author_id, listing_id, text, rating, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.AuthorID, r.ListingID, r.Text, r.Rating, r.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReview insert: %v", err)
	}

	return r
}
