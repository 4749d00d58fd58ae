package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/internal/service/favorite"
)

type favoriteService interface {
	Toggle(ctx context.Context, listingID uuid.UUID) (*favorite.ToggleResult, error)
	Hearts(ctx context.Context) ([]domain.Listing, error)
}

// HeartHandler serves the favorites endpoints.
type HeartHandler struct {
	svc favoriteService
	log *slog.Logger
}

// NewHeartHandler creates a HeartHandler.
func NewHeartHandler(svc favoriteService, logger *slog.Logger) *HeartHandler {
	return &HeartHandler{svc: svc, log: logger.With("handler", "heart")}
}

type heartResponse struct {
	Hearted bool         `json:"hearted"`
	User    userResponse `json:"user"`
}

// Toggle handles POST /api/v1/listings/{id}/heart.
func (h *HeartHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	result, err := h.svc.Toggle(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, heartResponse{Hearted: result.Added, User: toUserResponse(result.User)})
}

// List handles GET /api/v1/hearts.
func (h *HeartHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Hearts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponses(items))
}
