package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Favorites    Favorites
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GravatarURL returns the avatar URL derived from the user's email.
func (u *User) GravatarURL() string {
	sum := md5.Sum([]byte(NormalizeEmail(u.Email)))
	return fmt.Sprintf("https://gravatar.com/avatar/%s?s=200", hex.EncodeToString(sum[:]))
}

// PasswordReset is a one-time password reset token. Only the SHA-256 hash
// of the token is stored.
type PasswordReset struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	UsedAt    *time.Time
}

// IsUsed returns true if the token has already been redeemed.
func (r *PasswordReset) IsUsed() bool {
	return r.UsedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (r *PasswordReset) IsExpired(now time.Time) bool {
	return r.ExpiresAt.Before(now)
}
