package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/pkg/ctxutil"
)

//go:generate moq -out account_service_mock_test.go -pkg rest . accountService
//go:generate moq -out listing_service_mock_test.go -pkg rest . listingService
//go:generate moq -out favorite_service_mock_test.go -pkg rest . favoriteService
//go:generate moq -out review_service_mock_test.go -pkg rest . reviewService

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(ctxutil.WithUserID(req.Context(), userID))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

type reviewLister func(ctx context.Context, ids []uuid.UUID) ([]domain.Review, error)

func (f reviewLister) ListByListingIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Review, error) {
	return f(ctx, ids)
}
