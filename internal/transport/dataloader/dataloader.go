// Package dataloader provides per-request DataLoaders that batch review
// lookups for listing pages into single SQL calls. DataLoaders call
// repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type reviewRepo interface {
	ListByListingIDs(ctx context.Context, listingIDs []uuid.UUID) ([]domain.Review, error)
}

// Repos holds the repositories required by DataLoaders.
type Repos struct {
	Review reviewRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	ReviewsByListingID *dataloader.Loader[uuid.UUID, []domain.Review]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ReviewsByListingID: newLoader(newReviewsBatchFn(repos.Review)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func newReviewsBatchFn(repo reviewRepo) dataloader.BatchFunc[uuid.UUID, []domain.Review] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Review] {
		reviews, err := repo.ListByListingIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Review](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Review, len(keys))
		for _, rv := range reviews {
			grouped[rv.ListingID] = append(grouped[rv.ListingID], rv)
		}

		return mapResults(keys, grouped, emptySlice[domain.Review])
	}
}

// ReviewsFor loads the reviews of every listing in ids through one batch
// and returns them keyed by listing id.
func (l *Loaders) ReviewsFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.Review, error) {
	out := make(map[uuid.UUID][]domain.Review, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	results, errs := l.ReviewsByListingID.LoadMany(ctx, ids)()
	for i, id := range ids {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = results[i]
	}
	return out, nil
}

// errorResults returns n results all carrying err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context. Returns nil when the
// middleware did not run.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware creates an HTTP middleware that instantiates per-request
// DataLoaders and stores them in the request context.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
