package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	FavoriteIDsFunc    func(ctx context.Context, userID uuid.UUID) (domain.Favorites, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, name string, email string) (*domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, passwordHash string) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		FavoriteIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Name  string
			Email string
		}
		UpdatePassword []struct {
			Ctx          context.Context
			ID           uuid.UUID
			PasswordHash string
		}
	}
	lockCreate         sync.RWMutex
	lockFavoriteIDs    sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockGetByID        sync.RWMutex
	lockUpdate         sync.RWMutex
	lockUpdatePassword sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
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

func (mock *userRepoMock) Update(ctx context.Context, id uuid.UUID, name string, email string) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Name  string
		Email string
	}{Ctx: ctx, ID: id, Name: name, Email: email}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, name, email)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Name  string
	Email string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ID           uuid.UUID
		PasswordHash string
	}{Ctx: ctx, ID: id, PasswordHash: passwordHash}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	Ctx          context.Context
	ID           uuid.UUID
	PasswordHash string
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}
