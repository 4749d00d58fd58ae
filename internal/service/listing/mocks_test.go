package listing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

var _ listingRepo = &listingRepoMock{}

type listingRepoMock struct {
	CountFunc     func(ctx context.Context, f domain.ListingFilter) (int, error)
	CreateFunc    func(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Listing, error)
	ListFunc      func(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error)
	NearbyFunc    func(ctx context.Context, lng float64, lat float64, radiusM float64, limit int) ([]domain.NearbyListing, error)
	SearchFunc    func(ctx context.Context, q string, limit int) ([]domain.Listing, error)
	SlugsLikeFunc func(ctx context.Context, token string) ([]string, error)
	TagCountsFunc func(ctx context.Context) ([]domain.TagCount, error)
	TopFunc       func(ctx context.Context, minReviews int, limit int) ([]domain.TopListing, error)
	UpdateFunc    func(ctx context.Context, l *domain.Listing) (*domain.Listing, error)

	calls struct {
		Count []struct {
			Ctx context.Context
			F   domain.ListingFilter
		}
		Create []struct {
			Ctx context.Context
			L   *domain.Listing
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		List []struct {
			Ctx context.Context
			F   domain.ListingFilter
		}
		Nearby []struct {
			Ctx     context.Context
			Lng     float64
			Lat     float64
			RadiusM float64
			Limit   int
		}
		Search []struct {
			Ctx   context.Context
			Q     string
			Limit int
		}
		SlugsLike []struct {
			Ctx   context.Context
			Token string
		}
		TagCounts []struct {
			Ctx context.Context
		}
		Top []struct {
			Ctx        context.Context
			MinReviews int
			Limit      int
		}
		Update []struct {
			Ctx context.Context
			L   *domain.Listing
		}
	}
	lockCount     sync.RWMutex
	lockCreate    sync.RWMutex
	lockGetByID   sync.RWMutex
	lockGetBySlug sync.RWMutex
	lockList      sync.RWMutex
	lockNearby    sync.RWMutex
	lockSearch    sync.RWMutex
	lockSlugsLike sync.RWMutex
	lockTagCounts sync.RWMutex
	lockTop       sync.RWMutex
	lockUpdate    sync.RWMutex
}

func (mock *listingRepoMock) Count(ctx context.Context, f domain.ListingFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("listingRepoMock.CountFunc: method is nil but listingRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ListingFilter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *listingRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   domain.ListingFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *listingRepoMock) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	if mock.CreateFunc == nil {
		panic("listingRepoMock.CreateFunc: method is nil but listingRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Listing
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *listingRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.Listing
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *listingRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	if mock.GetByIDFunc == nil {
		panic("listingRepoMock.GetByIDFunc: method is nil but listingRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *listingRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *listingRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	if mock.GetBySlugFunc == nil {
		panic("listingRepoMock.GetBySlugFunc: method is nil but listingRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *listingRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *listingRepoMock) List(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error) {
	if mock.ListFunc == nil {
		panic("listingRepoMock.ListFunc: method is nil but listingRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ListingFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *listingRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ListingFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *listingRepoMock) Nearby(ctx context.Context, lng float64, lat float64, radiusM float64, limit int) ([]domain.NearbyListing, error) {
	if mock.NearbyFunc == nil {
		panic("listingRepoMock.NearbyFunc: method is nil but listingRepo.Nearby was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Lng     float64
		Lat     float64
		RadiusM float64
		Limit   int
	}{Ctx: ctx, Lng: lng, Lat: lat, RadiusM: radiusM, Limit: limit}
	mock.lockNearby.Lock()
	mock.calls.Nearby = append(mock.calls.Nearby, callInfo)
	mock.lockNearby.Unlock()
	return mock.NearbyFunc(ctx, lng, lat, radiusM, limit)
}

func (mock *listingRepoMock) NearbyCalls() []struct {
	Ctx     context.Context
	Lng     float64
	Lat     float64
	RadiusM float64
	Limit   int
} {
	mock.lockNearby.RLock()
	calls := mock.calls.Nearby
	mock.lockNearby.RUnlock()
	return calls
}

func (mock *listingRepoMock) Search(ctx context.Context, q string, limit int) ([]domain.Listing, error) {
	if mock.SearchFunc == nil {
		panic("listingRepoMock.SearchFunc: method is nil but listingRepo.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Q     string
		Limit int
	}{Ctx: ctx, Q: q, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, q, limit)
}

func (mock *listingRepoMock) SearchCalls() []struct {
	Ctx   context.Context
	Q     string
	Limit int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *listingRepoMock) SlugsLike(ctx context.Context, token string) ([]string, error) {
	if mock.SlugsLikeFunc == nil {
		panic("listingRepoMock.SlugsLikeFunc: method is nil but listingRepo.SlugsLike was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockSlugsLike.Lock()
	mock.calls.SlugsLike = append(mock.calls.SlugsLike, callInfo)
	mock.lockSlugsLike.Unlock()
	return mock.SlugsLikeFunc(ctx, token)
}

func (mock *listingRepoMock) SlugsLikeCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockSlugsLike.RLock()
	calls := mock.calls.SlugsLike
	mock.lockSlugsLike.RUnlock()
	return calls
}

func (mock *listingRepoMock) TagCounts(ctx context.Context) ([]domain.TagCount, error) {
	if mock.TagCountsFunc == nil {
		panic("listingRepoMock.TagCountsFunc: method is nil but listingRepo.TagCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTagCounts.Lock()
	mock.calls.TagCounts = append(mock.calls.TagCounts, callInfo)
	mock.lockTagCounts.Unlock()
	return mock.TagCountsFunc(ctx)
}

func (mock *listingRepoMock) TagCountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockTagCounts.RLock()
	calls := mock.calls.TagCounts
	mock.lockTagCounts.RUnlock()
	return calls
}

func (mock *listingRepoMock) Top(ctx context.Context, minReviews int, limit int) ([]domain.TopListing, error) {
	if mock.TopFunc == nil {
		panic("listingRepoMock.TopFunc: method is nil but listingRepo.Top was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MinReviews int
		Limit      int
	}{Ctx: ctx, MinReviews: minReviews, Limit: limit}
	mock.lockTop.Lock()
	mock.calls.Top = append(mock.calls.Top, callInfo)
	mock.lockTop.Unlock()
	return mock.TopFunc(ctx, minReviews, limit)
}

func (mock *listingRepoMock) TopCalls() []struct {
	Ctx        context.Context
	MinReviews int
	Limit      int
} {
	mock.lockTop.RLock()
	calls := mock.calls.Top
	mock.lockTop.RUnlock()
	return calls
}

func (mock *listingRepoMock) Update(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	if mock.UpdateFunc == nil {
		panic("listingRepoMock.UpdateFunc: method is nil but listingRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Listing
	}{Ctx: ctx, L: l}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, l)
}

func (mock *listingRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	L   *domain.Listing
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	ListByListingFunc func(ctx context.Context, listingID uuid.UUID) ([]domain.Review, error)

	calls struct {
		ListByListing []struct {
			Ctx       context.Context
			ListingID uuid.UUID
		}
	}
	lockListByListing sync.RWMutex
}

func (mock *reviewRepoMock) ListByListing(ctx context.Context, listingID uuid.UUID) ([]domain.Review, error) {
	if mock.ListByListingFunc == nil {
		panic("reviewRepoMock.ListByListingFunc: method is nil but reviewRepo.ListByListing was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ListingID uuid.UUID
	}{Ctx: ctx, ListingID: listingID}
	mock.lockListByListing.Lock()
	mock.calls.ListByListing = append(mock.calls.ListByListing, callInfo)
	mock.lockListByListing.Unlock()
	return mock.ListByListingFunc(ctx, listingID)
}

func (mock *reviewRepoMock) ListByListingCalls() []struct {
	Ctx       context.Context
	ListingID uuid.UUID
} {
	mock.lockListByListing.RLock()
	calls := mock.calls.ListByListing
	mock.lockListByListing.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
