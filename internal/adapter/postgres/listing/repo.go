// Package listing implements the Listing repository using PostgreSQL.
// Dynamic reads are built with squirrel and scanned with scany; the fixed
// aggregation queries are plain SQL.
package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/delicious-backend/internal/adapter/postgres"
	"github.com/heartmarshall/delicious-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides listing persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new listing repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Raw SQL for aggregation and proximity queries
// ---------------------------------------------------------------------------

const tagCountsSQL = `
SELECT tag, count(*)::int AS count
FROM listings l, unnest(l.tags) AS tag
GROUP BY tag
ORDER BY count DESC, tag COLLATE "C" ASC`

// Ties on the mean fall back to insertion order.
const topSQL = `
SELECT
    l.id, l.author_id, l.name, l.slug, l.description, l.tags,
    l.photo, l.lng, l.lat, l.address, l.created_at, l.updated_at,
    avg(r.rating)::float8 AS avg_rating,
    count(r.id)::int      AS review_count
FROM listings l
JOIN reviews r ON r.listing_id = l.id
GROUP BY l.id
HAVING count(r.id) >= $1
ORDER BY avg_rating DESC, l.created_at ASC, l.id ASC
LIMIT $2`

// Haversine over the mean earth radius; $1 lng, $2 lat, $3 radius, $4 limit.
const nearbySQL = `
SELECT id, name, description, slug, photo, lng, lat, address
FROM (
    SELECT
        l.id, l.name, l.description, l.slug, l.photo, l.lng, l.lat, l.address,
        2 * 6371008.8 * asin(least(1, sqrt(
            power(sin(radians(l.lat - $2) / 2), 2)
            + cos(radians($2)) * cos(radians(l.lat))
            * power(sin(radians(l.lng - $1) / 2), 2)
        ))) AS distance
    FROM listings l
    WHERE l.lat IS NOT NULL AND l.lng IS NOT NULL
) d
WHERE distance <= $3
ORDER BY distance ASC, id ASC
LIMIT $4`

const favoritesSQL = `
SELECT
    l.id, l.author_id, l.name, l.slug, l.description, l.tags,
    l.photo, l.lng, l.lat, l.address, l.created_at, l.updated_at
FROM user_favorites f
JOIN listings l ON l.id = f.listing_id
WHERE f.user_id = $1
ORDER BY f.created_at ASC, l.id ASC`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a listing. A concurrent insert that claimed the same slug
// surfaces as domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	lng, lat, address := locationArgs(l.Location)
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := psql.Insert("listings AS l").
		Columns("id", "author_id", "name", "slug", "description", "tags", "photo", "lng", "lat", "address", "created_at", "updated_at").
		Values(l.ID, l.AuthorID, l.Name, l.Slug, l.Description, tags, l.Photo, lng, lat, address, l.CreatedAt, l.UpdatedAt).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert listing: %w", err)
	}

	var row listingRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "listing", l.Slug)
	}

	result := toDomain(row)
	return &result, nil
}

// Update overwrites the mutable fields of an existing listing and bumps
// updated_at.
func (r *Repo) Update(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	lng, lat, address := locationArgs(l.Location)
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := psql.Update("listings AS l").
		Set("name", l.Name).
		Set("slug", l.Slug).
		Set("description", l.Description).
		Set("tags", tags).
		Set("photo", l.Photo).
		Set("lng", lng).
		Set("lat", lat).
		Set("address", address).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"l.id": l.ID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update listing: %w", err)
	}

	var row listingRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "listing", l.ID)
	}

	result := toDomain(row)
	return &result, nil
}

// ---------------------------------------------------------------------------
// Single-row reads
// ---------------------------------------------------------------------------

// GetByID returns a listing by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return r.getOne(ctx, sq.Eq{"l.id": id}, id)
}

// GetBySlug returns a listing by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	return r.getOne(ctx, sq.Eq{"l.slug": slug}, slug)
}

func (r *Repo) getOne(ctx context.Context, pred sq.Eq, key any) (*domain.Listing, error) {
	query, args, err := psql.Select(listingColumns...).
		From("listings l").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get listing: %w", err)
	}

	var row listingRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "listing", key)
	}

	l := toDomain(row)
	return &l, nil
}

// Exists reports whether a listing with the given id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.q(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM listings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "listing", id)
	}
	return exists, nil
}

// SlugsLike returns every stored slug equal to token or to a numbered
// variant of it, compared case-insensitively.
func (r *Repo) SlugsLike(ctx context.Context, token string) ([]string, error) {
	var slugs []string
	err := pgxscan.Select(ctx, r.q(ctx), &slugs,
		`SELECT slug FROM listings WHERE slug ~* $1 ORDER BY slug`, domain.SlugPattern(token))
	if err != nil {
		return nil, fmt.Errorf("slugs like %s: %w", token, err)
	}
	return slugs, nil
}

// ---------------------------------------------------------------------------
// Collection reads
// ---------------------------------------------------------------------------

// List returns one window of listings matching f.
func (r *Repo) List(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error) {
	b := applyWindow(applyPredicate(psql.Select(listingColumns...).From("listings l"), f), f)
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list listings: %w", err)
	}

	var rows []listingRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return toDomainList(rows), nil
}

// Count returns the number of listings matching f, ignoring its window.
func (r *Repo) Count(ctx context.Context, f domain.ListingFilter) (int, error) {
	query, args, err := applyPredicate(psql.Select("count(*)").From("listings l"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count listings: %w", err)
	}

	var count int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return count, nil
}

// TagCounts returns per-tag occurrence counts, most frequent first, ties
// broken by byte order of the tag.
func (r *Repo) TagCounts(ctx context.Context) ([]domain.TagCount, error) {
	var rows []tagCountRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, tagCountsSQL); err != nil {
		return nil, fmt.Errorf("tag counts: %w", err)
	}

	out := make([]domain.TagCount, len(rows))
	for i, row := range rows {
		out[i] = domain.TagCount{Tag: row.Tag, Count: row.Count}
	}
	return out, nil
}

// Top returns listings with at least minReviews reviews ranked by mean
// rating, at most limit of them.
func (r *Repo) Top(ctx context.Context, minReviews, limit int) ([]domain.TopListing, error) {
	var rows []topRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, topSQL, minReviews, limit); err != nil {
		return nil, fmt.Errorf("top listings: %w", err)
	}

	out := make([]domain.TopListing, len(rows))
	for i, row := range rows {
		out[i] = domain.TopListing{
			Listing:     toDomain(row.listingRow),
			AvgRating:   row.AvgRating,
			ReviewCount: row.ReviewCount,
		}
	}
	return out, nil
}

// Search runs a full-text query over name and description, best match
// first. q uses web search syntax (quoted phrases, -exclusions, or).
func (r *Repo) Search(ctx context.Context, q string, limit int) ([]domain.Listing, error) {
	query, args, err := psql.Select(listingColumns...).
		From("listings l").
		Where("l.search_vector @@ websearch_to_tsquery('english', ?)", q).
		OrderByClause("ts_rank(l.search_vector, websearch_to_tsquery('english', ?)) DESC", q).
		OrderBy("l.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search listings: %w", err)
	}

	var rows []listingRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return toDomainList(rows), nil
}

// Nearby returns listings within radiusM meters of (lng, lat), nearest first.
func (r *Repo) Nearby(ctx context.Context, lng, lat, radiusM float64, limit int) ([]domain.NearbyListing, error) {
	var rows []nearbyRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, nearbySQL, lng, lat, radiusM, limit); err != nil {
		return nil, fmt.Errorf("nearby listings: %w", err)
	}

	out := make([]domain.NearbyListing, len(rows))
	for i, row := range rows {
		out[i] = domain.NearbyListing{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Slug:        row.Slug,
			Photo:       row.Photo,
			Location:    domain.Location{Lng: row.Lng, Lat: row.Lat, Address: row.Address},
		}
	}
	return out, nil
}

// ListFavorites returns the listings userID has hearted, in the order they
// were hearted.
func (r *Repo) ListFavorites(ctx context.Context, userID uuid.UUID) ([]domain.Listing, error) {
	var rows []listingRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, favoritesSQL, userID); err != nil {
		return nil, fmt.Errorf("list favorites of %s: %w", userID, err)
	}
	return toDomainList(rows), nil
}

func joinColumns() string {
	return strings.Join(listingColumns, ", ")
}
