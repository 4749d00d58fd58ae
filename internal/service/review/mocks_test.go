package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	CreateFunc func(ctx context.Context, rv *domain.Review) (*domain.Review, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rv  *domain.Review
		}
	}
	lockCreate sync.RWMutex
}

func (mock *reviewRepoMock) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rv  *domain.Review
	}{Ctx: ctx, Rv: rv}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rv)
}

func (mock *reviewRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rv  *domain.Review
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ listingRepo = &listingRepoMock{}

type listingRepoMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Exists []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockExists sync.RWMutex
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
