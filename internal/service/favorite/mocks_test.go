package favorite

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	FavoriteIDsFunc    func(ctx context.Context, userID uuid.UUID) (domain.Favorites, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ToggleFavoriteFunc func(ctx context.Context, userID uuid.UUID, listingID uuid.UUID) (bool, error)

	calls struct {
		FavoriteIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ToggleFavorite []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			ListingID uuid.UUID
		}
	}
	lockFavoriteIDs    sync.RWMutex
	lockGetByID        sync.RWMutex
	lockToggleFavorite sync.RWMutex
}

func (mock *userRepoMock) FavoriteIDs(ctx context.Context, userID uuid.UUID) (domain.Favorites, error) {
	if mock.FavoriteIDsFunc == nil {
		panic("userRepoMock.FavoriteIDsFunc: method is nil but userRepo.FavoriteIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockFavoriteIDs.Lock()
	mock.calls.FavoriteIDs = append(mock.calls.FavoriteIDs, callInfo)
	mock.lockFavoriteIDs.Unlock()
	return mock.FavoriteIDsFunc(ctx, userID)
}

func (mock *userRepoMock) FavoriteIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockFavoriteIDs.RLock()
	calls := mock.calls.FavoriteIDs
	mock.lockFavoriteIDs.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) ToggleFavorite(ctx context.Context, userID uuid.UUID, listingID uuid.UUID) (bool, error) {
	if mock.ToggleFavoriteFunc == nil {
		panic("userRepoMock.ToggleFavoriteFunc: method is nil but userRepo.ToggleFavorite was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		ListingID uuid.UUID
	}{Ctx: ctx, UserID: userID, ListingID: listingID}
	mock.lockToggleFavorite.Lock()
	mock.calls.ToggleFavorite = append(mock.calls.ToggleFavorite, callInfo)
	mock.lockToggleFavorite.Unlock()
	return mock.ToggleFavoriteFunc(ctx, userID, listingID)
}

func (mock *userRepoMock) ToggleFavoriteCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	ListingID uuid.UUID
} {
	mock.lockToggleFavorite.RLock()
	calls := mock.calls.ToggleFavorite
	mock.lockToggleFavorite.RUnlock()
	return calls
}

var _ listingRepo = &listingRepoMock{}

type listingRepoMock struct {
	ExistsFunc        func(ctx context.Context, id uuid.UUID) (bool, error)
	ListFavoritesFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Listing, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListFavorites []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockExists        sync.RWMutex
	lockListFavorites sync.RWMutex
}

func (mock *listingRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("listingRepoMock.ExistsFunc: method is nil but listingRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *listingRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *listingRepoMock) ListFavorites(ctx context.Context, userID uuid.UUID) ([]domain.Listing, error) {
	if mock.ListFavoritesFunc == nil {
		panic("listingRepoMock.ListFavoritesFunc: method is nil but listingRepo.ListFavorites was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListFavorites.Lock()
	mock.calls.ListFavorites = append(mock.calls.ListFavorites, callInfo)
	mock.lockListFavorites.Unlock()
	return mock.ListFavoritesFunc(ctx, userID)
}

func (mock *listingRepoMock) ListFavoritesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListFavorites.RLock()
	calls := mock.calls.ListFavorites
	mock.lockListFavorites.RUnlock()
	return calls
}
