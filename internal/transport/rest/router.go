package rest

import (
	"net/http"

	"github.com/heartmarshall/delicious-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Account *AccountHandler
	Listing *ListingHandler
	Heart   *HeartHandler
	Review  *ReviewHandler
}

// NewRouter mounts the probes and the /api/v1 routes. Credential endpoints
// go through authLimit; endpoints acting on behalf of a user require one.
// The global chain (request id, logging, auth, loaders) is applied by the
// caller around the returned mux.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()
	user := middleware.Chain(middleware.RequireUser)
	limited := middleware.Chain(authLimit)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/v1/auth/register", limited.ThenFunc(h.Account.Register))
	mux.Handle("POST /api/v1/auth/login", limited.ThenFunc(h.Account.Login))
	mux.Handle("POST /api/v1/auth/forgot", limited.ThenFunc(h.Account.Forgot))
	mux.Handle("POST /api/v1/auth/reset", limited.ThenFunc(h.Account.Reset))
	mux.Handle("GET /api/v1/account", user.ThenFunc(h.Account.Me))
	mux.Handle("PUT /api/v1/account", user.ThenFunc(h.Account.Update))

	mux.HandleFunc("GET /api/v1/listings", h.Listing.List)
	mux.Handle("POST /api/v1/listings", user.ThenFunc(h.Listing.Create))
	mux.HandleFunc("GET /api/v1/listings/near", h.Listing.Near)
	mux.HandleFunc("GET /api/v1/listings/slug/{slug}", h.Listing.GetBySlug)
	mux.HandleFunc("GET /api/v1/listings/{id}", h.Listing.Get)
	mux.Handle("PUT /api/v1/listings/{id}", user.ThenFunc(h.Listing.Update))
	mux.Handle("POST /api/v1/listings/{id}/heart", user.ThenFunc(h.Heart.Toggle))
	mux.Handle("POST /api/v1/listings/{id}/reviews", user.ThenFunc(h.Review.Add))

	mux.HandleFunc("GET /api/v1/tags", h.Listing.Tags)
	mux.HandleFunc("GET /api/v1/tags/{tag}", h.Listing.Tags)
	mux.HandleFunc("GET /api/v1/top", h.Listing.Top)
	mux.HandleFunc("GET /api/v1/search", h.Listing.Search)
	mux.Handle("GET /api/v1/hearts", user.ThenFunc(h.Heart.List))

	return mux
}
