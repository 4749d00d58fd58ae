package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/internal/service/favorite"
)

var _ favoriteService = &favoriteServiceMock{}

type favoriteServiceMock struct {
	HeartsFunc func(ctx context.Context) ([]domain.Listing, error)
	ToggleFunc func(ctx context.Context, listingID uuid.UUID) (*favorite.ToggleResult, error)

	calls struct {
		Hearts []struct {
			Ctx context.Context
		}
		Toggle []struct {
			Ctx       context.Context
			ListingID uuid.UUID
		}
	}
	lockHearts sync.RWMutex
	lockToggle sync.RWMutex
}

func (mock *favoriteServiceMock) Hearts(ctx context.Context) ([]domain.Listing, error) {
	if mock.HeartsFunc == nil {
		panic("favoriteServiceMock.HeartsFunc: method is nil but favoriteService.Hearts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockHearts.Lock()
	mock.calls.Hearts = append(mock.calls.Hearts, callInfo)
	mock.lockHearts.Unlock()
	return mock.HeartsFunc(ctx)
}

func (mock *favoriteServiceMock) HeartsCalls() []struct {
	Ctx context.Context
} {
	mock.lockHearts.RLock()
	calls := mock.calls.Hearts
	mock.lockHearts.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) Toggle(ctx context.Context, listingID uuid.UUID) (*favorite.ToggleResult, error) {
	if mock.ToggleFunc == nil {
		panic("favoriteServiceMock.ToggleFunc: method is nil but favoriteService.Toggle was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ListingID uuid.UUID
	}{Ctx: ctx, ListingID: listingID}
	mock.lockToggle.Lock()
	mock.calls.Toggle = append(mock.calls.Toggle, callInfo)
	mock.lockToggle.Unlock()
	return mock.ToggleFunc(ctx, listingID)
}

func (mock *favoriteServiceMock) ToggleCalls() []struct {
	Ctx       context.Context
	ListingID uuid.UUID
} {
	mock.lockToggle.RLock()
	calls := mock.calls.Toggle
	mock.lockToggle.RUnlock()
	return calls
}
