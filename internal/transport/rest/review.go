package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/internal/service/review"
)

type reviewService interface {
	AddReview(ctx context.Context, input review.AddReviewInput) (*domain.Review, error)
}

// ReviewHandler serves review submission.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type addReviewRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// Add handles POST /api/v1/listings/{id}/reviews.
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req addReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddReview(r.Context(), review.AddReviewInput{
		ListingID: id,
		Text:      req.Text,
		Rating:    req.Rating,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(created))
}
