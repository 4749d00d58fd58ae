package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/delicious-backend/internal/adapter/mail"
	"github.com/heartmarshall/delicious-backend/internal/adapter/postgres"
	listingrepo "github.com/heartmarshall/delicious-backend/internal/adapter/postgres/listing"
	reviewrepo "github.com/heartmarshall/delicious-backend/internal/adapter/postgres/review"
	"github.com/heartmarshall/delicious-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/delicious-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/delicious-backend/internal/auth"
	"github.com/heartmarshall/delicious-backend/internal/config"
	authsvc "github.com/heartmarshall/delicious-backend/internal/service/auth"
	"github.com/heartmarshall/delicious-backend/internal/service/favorite"
	"github.com/heartmarshall/delicious-backend/internal/service/listing"
	"github.com/heartmarshall/delicious-backend/internal/service/review"
	"github.com/heartmarshall/delicious-backend/internal/transport/dataloader"
	"github.com/heartmarshall/delicious-backend/internal/transport/middleware"
	"github.com/heartmarshall/delicious-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = 5 * time.Minute

// Services is the service layer wired to PostgreSQL, shared by the server
// and the offline commands.
type Services struct {
	Auth     *authsvc.Service
	Listing  *listing.Service
	Favorite *favorite.Service
	Review   *review.Service

	Users   *userrepo.Repo
	Reviews *reviewrepo.Repo
}

// NewServices builds repositories and services on top of pool.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Services {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	listings := listingrepo.New(pool)
	reviews := reviewrepo.New(pool)
	resets := token.New(pool)

	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &Services{
		Auth:     authsvc.NewService(logger, users, resets, txm, jwtManager, newMailer(cfg.Mail, logger), cfg.Auth),
		Listing:  listing.NewService(logger, listings, reviews, txm, cfg.Listings),
		Favorite: favorite.NewService(logger, users, listings),
		Review:   review.NewService(logger, reviews, listings),
		Users:    users,
		Reviews:  reviews,
	}
}

// NewHandler builds the REST router on top of pool and wraps it in the
// global middleware chain. The returned cleanup stops background workers
// and must be called on shutdown.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func()) {
	svc := NewServices(cfg, logger, pool)
	limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(BuildVersion(), rest.Dependency{Name: "database", Pinger: pool}),
		Account: rest.NewAccountHandler(svc.Auth, logger),
		Listing: rest.NewListingHandler(svc.Listing, logger),
		Heart:   rest.NewHeartHandler(svc.Favorite, logger),
		Review:  rest.NewReviewHandler(svc.Review, logger),
	}, limiter.Limit("auth", cfg.Auth.RateLimitPerMinute))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svc.Auth),
		middleware.TrackUser,
		dataloader.Middleware(&dataloader.Repos{Review: svc.Reviews}),
	)(router)

	return handler, limiter.Stop
}

type resetMailer interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}

func newMailer(cfg config.MailConfig, logger *slog.Logger) resetMailer {
	if cfg.Driver == "smtp" {
		return mail.NewSMTPMailer(cfg)
	}
	return mail.NewLogMailer(logger)
}
