// Package user implements the User repository using PostgreSQL, including
// the user's favorite listings.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/delicious-backend/internal/adapter/postgres"
	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const userColumns = `id, email, name, password_hash, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const updateSQL = `
UPDATE users SET name = $2, email = $3, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const updatePasswordSQL = `
UPDATE users SET password_hash = $2, updated_at = now()
WHERE id = $1`

const favoriteIDsSQL = `
SELECT listing_id FROM user_favorites
WHERE user_id = $1
ORDER BY created_at ASC, listing_id ASC`

// toggleFavoriteSQL removes the pair if present, otherwise inserts it, in a
// single statement. A row comes back only when the insert branch ran.
const toggleFavoriteSQL = `
WITH removed AS (
    DELETE FROM user_favorites
    WHERE user_id = $1 AND listing_id = $2
    RETURNING listing_id
)
INSERT INTO user_favorites (user_id, listing_id, created_at)
SELECT $1, $2, now()
WHERE NOT EXISTS (SELECT 1 FROM removed)
ON CONFLICT (user_id, listing_id) DO NOTHING
RETURNING listing_id`

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// Create inserts a new user. A taken email surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	result := toDomain(row)
	return &result, nil
}

// GetByID returns a user by primary key, without favorites.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomain(row)
	return &u, nil
}

// GetByEmail returns a user by normalized email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByEmailSQL, email); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	u := toDomain(row)
	return &u, nil
}

// Update sets name and email for the given user.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, email string) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateSQL, id, name, email); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := toDomain(row)
	return &u, nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, updatePasswordSQL, id, passwordHash)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Favorites
// ---------------------------------------------------------------------------

// FavoriteIDs returns the listing ids userID has hearted, oldest first.
func (r *Repo) FavoriteIDs(ctx context.Context, userID uuid.UUID) (domain.Favorites, error) {
	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, favoriteIDsSQL, userID); err != nil {
		return nil, fmt.Errorf("favorites of %s: %w", userID, err)
	}
	return domain.Favorites(ids), nil
}

// ToggleFavorite adds listingID to the user's favorites if absent and
// removes it if present. added reports which happened. The listing must
// exist; otherwise the insert branch fails with domain.ErrNotFound.
func (r *Repo) ToggleFavorite(ctx context.Context, userID, listingID uuid.UUID) (added bool, err error) {
	var got uuid.UUID
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, toggleFavoriteSQL, userID, listingID).Scan(&got)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	default:
		return false, postgres.MapError(err, "favorite", listingID)
	}
}

func toDomain(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
