package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/internal/service/auth"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	ForgotPasswordFunc func(ctx context.Context, input auth.ForgotPasswordInput) error
	LoginFunc          func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	MeFunc             func(ctx context.Context) (*domain.User, error)
	RegisterFunc       func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	ResetPasswordFunc  func(ctx context.Context, input auth.ResetPasswordInput) (*auth.AuthResult, error)
	UpdateAccountFunc  func(ctx context.Context, input auth.UpdateAccountInput) (*domain.User, error)

	calls struct {
		ForgotPassword []struct {
			Ctx   context.Context
			Input auth.ForgotPasswordInput
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Me []struct {
			Ctx context.Context
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		ResetPassword []struct {
			Ctx   context.Context
			Input auth.ResetPasswordInput
		}
		UpdateAccount []struct {
			Ctx   context.Context
			Input auth.UpdateAccountInput
		}
	}
	lockForgotPassword sync.RWMutex
	lockLogin          sync.RWMutex
	lockMe             sync.RWMutex
	lockRegister       sync.RWMutex
	lockResetPassword  sync.RWMutex
	lockUpdateAccount  sync.RWMutex
}

func (mock *accountServiceMock) ForgotPassword(ctx context.Context, input auth.ForgotPasswordInput) error {
	if mock.ForgotPasswordFunc == nil {
		panic("accountServiceMock.ForgotPasswordFunc: method is nil but accountService.ForgotPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ForgotPasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockForgotPassword.Lock()
	mock.calls.ForgotPassword = append(mock.calls.ForgotPassword, callInfo)
	mock.lockForgotPassword.Unlock()
	return mock.ForgotPasswordFunc(ctx, input)
}

func (mock *accountServiceMock) ForgotPasswordCalls() []struct {
	Ctx   context.Context
	Input auth.ForgotPasswordInput
} {
	mock.lockForgotPassword.RLock()
	calls := mock.calls.ForgotPassword
	mock.lockForgotPassword.RUnlock()
	return calls
}

func (mock *accountServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("accountServiceMock.LoginFunc: method is nil but accountService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *accountServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *accountServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("accountServiceMock.MeFunc: method is nil but accountService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *accountServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *accountServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("accountServiceMock.RegisterFunc: method is nil but accountService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *accountServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *accountServiceMock) ResetPassword(ctx context.Context, input auth.ResetPasswordInput) (*auth.AuthResult, error) {
	if mock.ResetPasswordFunc == nil {
		panic("accountServiceMock.ResetPasswordFunc: method is nil but accountService.ResetPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ResetPasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockResetPassword.Lock()
	mock.calls.ResetPassword = append(mock.calls.ResetPassword, callInfo)
	mock.lockResetPassword.Unlock()
	return mock.ResetPasswordFunc(ctx, input)
}

func (mock *accountServiceMock) ResetPasswordCalls() []struct {
	Ctx   context.Context
	Input auth.ResetPasswordInput
} {
	mock.lockResetPassword.RLock()
	calls := mock.calls.ResetPassword
	mock.lockResetPassword.RUnlock()
	return calls
}

func (mock *accountServiceMock) UpdateAccount(ctx context.Context, input auth.UpdateAccountInput) (*domain.User, error) {
	if mock.UpdateAccountFunc == nil {
		panic("accountServiceMock.UpdateAccountFunc: method is nil but accountService.UpdateAccount was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.UpdateAccountInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateAccount.Lock()
	mock.calls.UpdateAccount = append(mock.calls.UpdateAccount, callInfo)
	mock.lockUpdateAccount.Unlock()
	return mock.UpdateAccountFunc(ctx, input)
}

func (mock *accountServiceMock) UpdateAccountCalls() []struct {
	Ctx   context.Context
	Input auth.UpdateAccountInput
} {
	mock.lockUpdateAccount.RLock()
	calls := mock.calls.UpdateAccount
	mock.lockUpdateAccount.RUnlock()
	return calls
}
