package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/internal/service/listing"
	"github.com/heartmarshall/delicious-backend/internal/transport/dataloader"
)

// listingService defines the minimal interface needed by ListingHandler.
type listingService interface {
	Paginate(ctx context.Context, page int) (domain.Page[domain.Listing], error)
	CreateListing(ctx context.Context, input listing.CreateListingInput) (*domain.Listing, error)
	GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	UpdateListing(ctx context.Context, input listing.UpdateListingInput) (*domain.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*domain.ListingDetail, error)
	ListByTag(ctx context.Context, tag string) (*listing.TagPage, error)
	TopListings(ctx context.Context) ([]domain.TopListing, error)
	Search(ctx context.Context, q string) ([]domain.Listing, error)
	Nearby(ctx context.Context, input listing.NearbyInput) ([]domain.NearbyListing, error)
}

// ListingHandler serves the listing directory endpoints.
type ListingHandler struct {
	svc listingService
	log *slog.Logger
}

// NewListingHandler creates a ListingHandler.
func NewListingHandler(svc listingService, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{svc: svc, log: logger.With("handler", "listing")}
}

type createListingRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	Photo       *string          `json:"photo"`
	Location    *locationRequest `json:"location"`
}

type updateListingRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Tags        *[]string        `json:"tags"`
	Photo       *string          `json:"photo"`
	Location    *locationRequest `json:"location"`
}

// List handles GET /api/v1/listings?page=N. A page beyond the last one
// redirects to the last page.
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	page := domain.ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.Paginate(r.Context(), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if result.PastEnd() {
		http.Redirect(w, r, fmt.Sprintf("%s?page=%d", r.URL.Path, result.TotalPages), http.StatusFound)
		return
	}

	items, err := h.withReviews(r.Context(), result.Items)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse{
		Items:   items,
		Page:    result.Page,
		Pages:   result.TotalPages,
		Count:   result.TotalCount,
		PerPage: result.Limit,
	})
}

// Create handles POST /api/v1/listings.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateListing(r.Context(), listing.CreateListingInput{
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Photo:       req.Photo,
		Location:    req.Location.toInput(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListingResponse(created))
}

// Get handles GET /api/v1/listings/{id}.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	l, err := h.svc.GetListing(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toListingResponse(l))
}

// Update handles PUT /api/v1/listings/{id}.
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var req updateListingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateListing(r.Context(), listing.UpdateListingInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Photo:       req.Photo,
		Location:    req.Location.toInput(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toListingResponse(updated))
}

// GetBySlug handles GET /api/v1/listings/slug/{slug}.
func (h *ListingHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toListingResponse(&detail.Listing)
	resp.Reviews = toReviewResponses(detail.Reviews)
	writeJSON(w, http.StatusOK, resp)
}

// Tags handles GET /api/v1/tags and GET /api/v1/tags/{tag}.
func (h *ListingHandler) Tags(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListByTag(r.Context(), r.PathValue("tag"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagPageResponse(page))
}

// Top handles GET /api/v1/top.
func (h *ListingHandler) Top(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.TopListings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTopResponses(items))
}

// Search handles GET /api/v1/search?q=.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponses(items))
}

// Near handles GET /api/v1/listings/near?lng=&lat=.
func (h *ListingHandler) Near(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var verr domain.ValidationError
	lng := parseCoordinate(&verr, "lng", q.Get("lng"))
	lat := parseCoordinate(&verr, "lat", q.Get("lat"))
	if err := verr.OrNil(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.Nearby(r.Context(), listing.NearbyInput{Lng: lng, Lat: lat})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNearbyResponses(items))
}

func parseCoordinate(errs *domain.ValidationError, field, raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		errs.Add(field, "must be a number")
		return 0
	}
	return v
}

// withReviews converts a page of listings and attaches their reviews through
// the request's loader. Without a loader the reviews are omitted.
func (h *ListingHandler) withReviews(ctx context.Context, items []domain.Listing) ([]listingResponse, error) {
	out := toListingResponses(items)

	loaders := dataloader.FromContext(ctx)
	if loaders == nil || len(items) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}

	byListing, err := loaders.ReviewsFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	for i := range out {
		out[i].Reviews = toReviewResponses(byListing[items[i].ID])
	}
	return out, nil
}
