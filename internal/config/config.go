package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Listings ListingsConfig `yaml:"listings"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Mail     MailConfig     `yaml:"mail"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"delicious"`
}

// AuthConfig holds token signing and password settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"            env:"AUTH_JWT_SECRET"            env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"            env:"AUTH_JWT_ISSUER"            env-default:"delicious"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl"      env:"AUTH_ACCESS_TOKEN_TTL"      env-default:"24h"`
	BcryptCost         int           `yaml:"bcrypt_cost"           env:"AUTH_BCRYPT_COST"           env-default:"10"`
	ResetTokenTTL      time.Duration `yaml:"reset_token_ttl"       env:"AUTH_RESET_TOKEN_TTL"       env-default:"1h"`
	ResetBaseURL       string        `yaml:"reset_base_url"        env:"AUTH_RESET_BASE_URL"        env-default:"http://localhost:7777/account/reset"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"AUTH_RATE_LIMIT_PER_MINUTE" env-default:"10"`
}

// ListingsConfig holds the listing directory tunables.
type ListingsConfig struct {
	PageSize      int     `yaml:"page_size"       env:"LISTINGS_PAGE_SIZE"       env-default:"4"`
	Sort          string  `yaml:"sort"            env:"LISTINGS_SORT"            env-default:"created_at"`
	SearchLimit   int     `yaml:"search_limit"    env:"LISTINGS_SEARCH_LIMIT"    env-default:"5"`
	NearbyLimit   int     `yaml:"nearby_limit"    env:"LISTINGS_NEARBY_LIMIT"    env-default:"10"`
	NearbyRadiusM float64 `yaml:"nearby_radius_m" env:"LISTINGS_NEARBY_RADIUS_M" env-default:"10000"`
	TopLimit      int     `yaml:"top_limit"       env:"LISTINGS_TOP_LIMIT"       env-default:"10"`
	MinReviews    int     `yaml:"min_reviews"     env:"LISTINGS_MIN_REVIEWS"     env-default:"2"`
}

// MailConfig selects how password reset emails are delivered. The log
// driver only writes the message to the application log.
type MailConfig struct {
	Driver   string `yaml:"driver"   env:"MAIL_DRIVER"   env-default:"log"`
	Host     string `yaml:"host"     env:"MAIL_HOST"`
	Port     int    `yaml:"port"     env:"MAIL_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"MAIL_USERNAME"`
	Password string `yaml:"password" env:"MAIL_PASSWORD"`
	From     string `yaml:"from"     env:"MAIL_FROM"     env-default:"Delicious <noreply@delicious.local>"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
