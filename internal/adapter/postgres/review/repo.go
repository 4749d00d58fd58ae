// Package review implements the Review repository using PostgreSQL.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/delicious-backend/internal/adapter/postgres"
	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type reviewRow struct {
	ID         uuid.UUID `db:"id"`
	AuthorID   uuid.UUID `db:"author_id"`
	ListingID  uuid.UUID `db:"listing_id"`
	AuthorName string    `db:"author_name"`
	Text       string    `db:"text"`
	Rating     int       `db:"rating"`
	CreatedAt  time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
WITH ins AS (
    INSERT INTO reviews (id, author_id, listing_id, text, rating, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, author_id, listing_id, text, rating, created_at
)
SELECT ins.id, ins.author_id, ins.listing_id, u.name AS author_name,
       ins.text, ins.rating::int AS rating, ins.created_at
FROM ins
JOIN users u ON u.id = ins.author_id`

const listByListingSQL = `
SELECT r.id, r.author_id, r.listing_id, u.name AS author_name,
       r.text, r.rating::int AS rating, r.created_at
FROM reviews r
JOIN users u ON u.id = r.author_id
WHERE r.listing_id = $1
ORDER BY r.created_at DESC, r.id`

const listByListingIDsSQL = `
SELECT r.id, r.author_id, r.listing_id, u.name AS author_name,
       r.text, r.rating::int AS rating, r.created_at
FROM reviews r
JOIN users u ON u.id = r.author_id
WHERE r.listing_id = ANY($1::uuid[])
ORDER BY r.listing_id, r.created_at DESC, r.id`

// Create inserts a review. A listing or author that does not exist
// surfaces as domain.ErrNotFound, a rating outside 1..5 as domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	var row reviewRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		rv.ID, rv.AuthorID, rv.ListingID, rv.Text, rv.Rating, rv.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "review", rv.ID)
	}

	result := toDomain(row)
	return &result, nil
}

// ListByListing returns the reviews of a listing, newest first.
func (r *Repo) ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.Review, error) {
	var rows []reviewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByListingSQL, listingID); err != nil {
		return nil, fmt.Errorf("list reviews of %s: %w", listingID, err)
	}
	return toDomainList(rows), nil
}

// ListByListingIDs returns the reviews of several listings, grouped by
// listing and newest first within each group. Used by the review loader.
func (r *Repo) ListByListingIDs(ctx context.Context, listingIDs []uuid.UUID) ([]domain.Review, error) {
	if len(listingIDs) == 0 {
		return []domain.Review{}, nil
	}

	var rows []reviewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByListingIDsSQL, listingIDs); err != nil {
		return nil, fmt.Errorf("list reviews by listing ids: %w", err)
	}
	return toDomainList(rows), nil
}

func toDomain(row reviewRow) domain.Review {
	return domain.Review{
		ID:         row.ID,
		AuthorID:   row.AuthorID,
		ListingID:  row.ListingID,
		AuthorName: row.AuthorName,
		Text:       row.Text,
		Rating:     row.Rating,
		CreatedAt:  row.CreatedAt,
	}
}

func toDomainList(rows []reviewRow) []domain.Review {
	out := make([]domain.Review, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out
}
