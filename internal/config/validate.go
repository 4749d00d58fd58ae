package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.ResetTokenTTL <= 0 {
		return fmt.Errorf("auth.reset_token_ttl must be > 0 (got %v)", c.Auth.ResetTokenTTL)
	}

	if c.Auth.RateLimitPerMinute <= 0 {
		return fmt.Errorf("auth.rate_limit_per_minute must be > 0 (got %d)", c.Auth.RateLimitPerMinute)
	}

	if err := c.Listings.validate(); err != nil {
		return fmt.Errorf("listings: %w", err)
	}

	switch c.Mail.Driver {
	case "log":
	case "smtp":
		if c.Mail.Host == "" {
			return fmt.Errorf("mail.host is required for the smtp driver")
		}
	default:
		return fmt.Errorf("mail.driver must be log or smtp (got %q)", c.Mail.Driver)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (l *ListingsConfig) validate() error {
	if l.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", l.PageSize)
	}
	switch l.Sort {
	case "created_at", "name":
	default:
		return fmt.Errorf("sort must be created_at or name (got %q)", l.Sort)
	}
	if l.SearchLimit <= 0 {
		return fmt.Errorf("search_limit must be > 0 (got %d)", l.SearchLimit)
	}
	if l.NearbyLimit <= 0 {
		return fmt.Errorf("nearby_limit must be > 0 (got %d)", l.NearbyLimit)
	}
	if l.NearbyRadiusM <= 0 {
		return fmt.Errorf("nearby_radius_m must be > 0 (got %v)", l.NearbyRadiusM)
	}
	if l.TopLimit <= 0 {
		return fmt.Errorf("top_limit must be > 0 (got %d)", l.TopLimit)
	}
	if l.MinReviews < 1 {
		return fmt.Errorf("min_reviews must be >= 1 (got %d)", l.MinReviews)
	}
	return nil
}
