package listing

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// listingColumns is the projection shared by every query returning full
// listings. The l alias must be in scope.
var listingColumns = []string{
	"l.id", "l.author_id", "l.name", "l.slug", "l.description", "l.tags",
	"l.photo", "l.lng", "l.lat", "l.address", "l.created_at", "l.updated_at",
}

type listingRow struct {
	ID          uuid.UUID `db:"id"`
	AuthorID    uuid.UUID `db:"author_id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	Tags        []string  `db:"tags"`
	Photo       *string   `db:"photo"`
	Lng         *float64  `db:"lng"`
	Lat         *float64  `db:"lat"`
	Address     *string   `db:"address"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type topRow struct {
	listingRow
	AvgRating   float64 `db:"avg_rating"`
	ReviewCount int     `db:"review_count"`
}

type nearbyRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Slug        string    `db:"slug"`
	Photo       *string   `db:"photo"`
	Lng         float64   `db:"lng"`
	Lat         float64   `db:"lat"`
	Address     string    `db:"address"`
}

type tagCountRow struct {
	Tag   string `db:"tag"`
	Count int    `db:"count"`
}

func toDomain(r listingRow) domain.Listing {
	l := domain.Listing{
		ID:          r.ID,
		AuthorID:    r.AuthorID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Tags:        r.Tags,
		Photo:       r.Photo,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if l.Tags == nil {
		l.Tags = []string{}
	}
	if r.Lng != nil && r.Lat != nil {
		loc := domain.Location{Lng: *r.Lng, Lat: *r.Lat}
		if r.Address != nil {
			loc.Address = *r.Address
		}
		l.Location = &loc
	}
	return l
}

func toDomainList(rows []listingRow) []domain.Listing {
	out := make([]domain.Listing, len(rows))
	for i, r := range rows {
		out[i] = toDomain(r)
	}
	return out
}

// locationArgs splits an optional location into nullable column values.
func locationArgs(loc *domain.Location) (lng, lat *float64, address *string) {
	if loc == nil {
		return nil, nil, nil
	}
	return &loc.Lng, &loc.Lat, &loc.Address
}
