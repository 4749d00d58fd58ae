package rest

import (
	"time"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/internal/service/auth"
	"github.com/heartmarshall/delicious-backend/internal/service/listing"
)

type locationRequest struct {
	Lng     float64 `json:"lng"`
	Lat     float64 `json:"lat"`
	Address string  `json:"address"`
}

func (l *locationRequest) toInput() *listing.LocationInput {
	if l == nil {
		return nil
	}
	return &listing.LocationInput{Lng: l.Lng, Lat: l.Lat, Address: l.Address}
}

type locationResponse struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
	Address     string     `json:"address,omitempty"`
}

func toLocationResponse(l *domain.Location) *locationResponse {
	if l == nil {
		return nil
	}
	return &locationResponse{Type: "Point", Coordinates: [2]float64{l.Lng, l.Lat}, Address: l.Address}
}

type listingResponse struct {
	ID          string            `json:"id"`
	Author      string            `json:"author"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Tags        []string          `json:"tags"`
	Photo       *string           `json:"photo,omitempty"`
	Location    *locationResponse `json:"location,omitempty"`
	Reviews     []reviewResponse  `json:"reviews,omitempty"`
	CreatedAt   time.Time         `json:"created"`
	UpdatedAt   time.Time         `json:"updated"`
}

func toListingResponse(l *domain.Listing) listingResponse {
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}
	return listingResponse{
		ID:          l.ID.String(),
		Author:      l.AuthorID.String(),
		Name:        l.Name,
		Slug:        l.Slug,
		Description: l.Description,
		Tags:        tags,
		Photo:       l.Photo,
		Location:    toLocationResponse(l.Location),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toListingResponses(items []domain.Listing) []listingResponse {
	out := make([]listingResponse, len(items))
	for i := range items {
		out[i] = toListingResponse(&items[i])
	}
	return out
}

type reviewResponse struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	AuthorName string    `json:"authorName,omitempty"`
	Listing    string    `json:"listing"`
	Text       string    `json:"text"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created"`
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:         r.ID.String(),
		Author:     r.AuthorID.String(),
		AuthorName: r.AuthorName,
		Listing:    r.ListingID.String(),
		Text:       r.Text,
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt,
	}
}

func toReviewResponses(reviews []domain.Review) []reviewResponse {
	out := make([]reviewResponse, len(reviews))
	for i := range reviews {
		out[i] = toReviewResponse(&reviews[i])
	}
	return out
}

type pageResponse struct {
	Items   []listingResponse `json:"items"`
	Page    int               `json:"page"`
	Pages   int               `json:"pages"`
	Count   int               `json:"count"`
	PerPage int               `json:"perPage"`
}

type tagCountResponse struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type tagPageResponse struct {
	Tags  []tagCountResponse `json:"tags"`
	Tag   string             `json:"tag"`
	Items []listingResponse  `json:"items"`
}

func toTagPageResponse(p *listing.TagPage) tagPageResponse {
	tags := make([]tagCountResponse, len(p.Tags))
	for i, tc := range p.Tags {
		tags[i] = tagCountResponse{Tag: tc.Tag, Count: tc.Count}
	}
	return tagPageResponse{Tags: tags, Tag: p.Tag, Items: toListingResponses(p.Items)}
}

type topListingResponse struct {
	listingResponse
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int     `json:"reviewCount"`
}

func toTopResponses(items []domain.TopListing) []topListingResponse {
	out := make([]topListingResponse, len(items))
	for i := range items {
		out[i] = topListingResponse{
			listingResponse: toListingResponse(&items[i].Listing),
			AvgRating:       items[i].AvgRating,
			ReviewCount:     items[i].ReviewCount,
		}
	}
	return out
}

type nearbyResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Slug        string           `json:"slug"`
	Photo       *string          `json:"photo,omitempty"`
	Location    locationResponse `json:"location"`
}

func toNearbyResponses(items []domain.NearbyListing) []nearbyResponse {
	out := make([]nearbyResponse, len(items))
	for i, n := range items {
		out[i] = nearbyResponse{
			ID:          n.ID.String(),
			Name:        n.Name,
			Description: n.Description,
			Slug:        n.Slug,
			Photo:       n.Photo,
			Location:    *toLocationResponse(&n.Location),
		}
	}
	return out
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Gravatar  string    `json:"gravatar"`
	Hearts    []string  `json:"hearts"`
	CreatedAt time.Time `json:"created"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Gravatar:  u.GravatarURL(),
		Hearts:    u.Favorites.Strings(),
		CreatedAt: u.CreatedAt,
	}
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{AccessToken: result.AccessToken, User: toUserResponse(result.User)}
}
