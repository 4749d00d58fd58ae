package domain

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a store or recipe in the directory. Both variants share the
// same shape; Location is nil for recipes.
type Listing struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Name        string
	Slug        string
	Description string
	Tags        []string
	Photo       *string
	Location    *Location
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID created the listing.
func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.AuthorID == userID
}

// ListingDetail is a listing with its reviews, newest first.
type ListingDetail struct {
	Listing
	Reviews []Review
}

// NearbyListing is the reduced projection returned by proximity search.
type NearbyListing struct {
	ID          uuid.UUID
	Name        string
	Description string
	Slug        string
	Photo       *string
	Location    Location
}

// TopListing is a listing ranked by its mean review rating.
type TopListing struct {
	Listing
	AvgRating   float64
	ReviewCount int
}

// TagCount is the number of occurrences of a tag across all listings.
type TagCount struct {
	Tag   string
	Count int
}

// ListingUpdateParams is a partial update. Nil fields are left unchanged.
type ListingUpdateParams struct {
	Name        *string
	Description *string
	Tags        *[]string
	Photo       *string
	Location    *Location
}
