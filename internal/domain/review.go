package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review ratings are whole numbers in [MinRating, MaxRating].
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rated text review attached to a listing.
type Review struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	ListingID  uuid.UUID
	AuthorName string
	Text       string
	Rating     int
	CreatedAt  time.Time
}
