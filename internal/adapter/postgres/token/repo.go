// Package token implements the password reset token repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/delicious-backend/internal/adapter/postgres"
	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// Repo provides password reset persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type resetRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	UsedAt    *time.Time `db:"used_at"`
}

const createSQL = `
INSERT INTO password_resets (id, user_id, token_hash, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, token_hash, expires_at, created_at, used_at`

// Only unused, unexpired tokens are visible.
const getActiveByHashSQL = `
SELECT id, user_id, token_hash, expires_at, created_at, used_at
FROM password_resets
WHERE token_hash = $1 AND used_at IS NULL AND expires_at > now()`

const markUsedSQL = `
UPDATE password_resets SET used_at = now()
WHERE id = $1 AND used_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM password_resets WHERE expires_at < now() OR used_at IS NOT NULL`

// Create stores a new reset token hash for userID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.PasswordReset, error) {
	var row resetRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL, uuid.New(), userID, tokenHash, expiresAt)
	if err != nil {
		return nil, postgres.MapError(err, "password_reset", userID)
	}

	t := toDomain(row)
	return &t, nil
}

// GetActiveByHash returns an unused, unexpired reset token by its hash.
// Returns domain.ErrNotFound if the token does not exist, was used, or expired.
func (r *Repo) GetActiveByHash(ctx context.Context, tokenHash string) (*domain.PasswordReset, error) {
	var row resetRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getActiveByHashSQL, tokenHash)
	if err != nil {
		return nil, postgres.MapError(err, "password_reset", "by hash")
	}

	t := toDomain(row)
	return &t, nil
}

// MarkUsed consumes a token. Returns domain.ErrNotFound if it was already
// consumed, so two concurrent resets cannot both succeed.
func (r *Repo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markUsedSQL, id)
	if err != nil {
		return postgres.MapError(err, "password_reset", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("password_reset %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteExpired removes all expired or used tokens and returns how many
// were deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired password resets: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func toDomain(row resetRow) domain.PasswordReset {
	return domain.PasswordReset{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
		UsedAt:    row.UsedAt,
	}
}
