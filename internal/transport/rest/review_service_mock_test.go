package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/internal/service/review"
)

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	AddReviewFunc func(ctx context.Context, input review.AddReviewInput) (*domain.Review, error)

	calls struct {
		AddReview []struct {
			Ctx   context.Context
			Input review.AddReviewInput
		}
	}
	lockAddReview sync.RWMutex
}

func (mock *reviewServiceMock) AddReview(ctx context.Context, input review.AddReviewInput) (*domain.Review, error) {
	if mock.AddReviewFunc == nil {
		panic("reviewServiceMock.AddReviewFunc: method is nil but reviewService.AddReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.AddReviewInput
	}{Ctx: ctx, Input: input}
	mock.lockAddReview.Lock()
	mock.calls.AddReview = append(mock.calls.AddReview, callInfo)
	mock.lockAddReview.Unlock()
	return mock.AddReviewFunc(ctx, input)
}

func (mock *reviewServiceMock) AddReviewCalls() []struct {
	Ctx   context.Context
	Input review.AddReviewInput
} {
	mock.lockAddReview.RLock()
	calls := mock.calls.AddReview
	mock.lockAddReview.RUnlock()
	return calls
}
