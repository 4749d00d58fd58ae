package listing

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// Listing input limits, in characters.
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 5000
	// MaxTags is the number of tags a listing may carry after normalization.
	MaxTags      = 20
	MaxTagLength = 50
)

// LocationInput is an optional point with address. All-or-nothing: a
// location is valid only with coordinates and a non-blank address.
type LocationInput struct {
	Lng     float64
	Lat     float64
	Address string
}

func (l *LocationInput) toDomain() *domain.Location {
	if l == nil {
		return nil
	}
	return &domain.Location{Lng: l.Lng, Lat: l.Lat, Address: strings.TrimSpace(l.Address)}
}

func (l *LocationInput) validate(errs *domain.ValidationError) {
	if l == nil {
		return
	}
	var ve *domain.ValidationError
	if errors.As(domain.ValidateCoordinates(l.Lng, l.Lat), &ve) {
		for _, fe := range ve.Errors {
			errs.Add("location."+fe.Field, fe.Message)
		}
	}
	if strings.TrimSpace(l.Address) == "" {
		errs.Add("location.address", "required")
	}
}

// CreateListingInput holds the parameters for creating a listing.
type CreateListingInput struct {
	Name        string
	Description string
	Tags        []string
	Photo       *string
	Location    *LocationInput
}

// Validate checks all fields and collects all errors.
func (i CreateListingInput) Validate() error {
	var errs domain.ValidationError

	validateName(&errs, i.Name)
	if utf8.RuneCountInString(strings.TrimSpace(i.Description)) > MaxDescriptionLength {
		errs.Add("description", "max 5000 characters")
	}
	validateTags(&errs, i.Tags)
	i.Location.validate(&errs)

	return errs.OrNil()
}

// UpdateListingInput holds the parameters for updating a listing.
// Nil fields are left unchanged.
type UpdateListingInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Tags        *[]string
	Photo       *string
	Location    *LocationInput
}

// Validate checks all fields and collects all errors.
func (i UpdateListingInput) Validate() error {
	var errs domain.ValidationError

	if i.ID == uuid.Nil {
		errs.Add("id", "required")
	}
	if i.Name == nil && i.Description == nil && i.Tags == nil && i.Photo == nil && i.Location == nil {
		errs.Add("input", "at least one field must be provided")
	}
	if i.Name != nil {
		validateName(&errs, *i.Name)
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > MaxDescriptionLength {
		errs.Add("description", "max 5000 characters")
	}
	if i.Tags != nil {
		validateTags(&errs, *i.Tags)
	}
	i.Location.validate(&errs)

	return errs.OrNil()
}

// NearbyInput holds the search origin of a proximity query.
type NearbyInput struct {
	Lng float64
	Lat float64
}

// Validate checks the coordinates.
func (i NearbyInput) Validate() error {
	return domain.ValidateCoordinates(i.Lng, i.Lat)
}

func validateName(errs *domain.ValidationError, name string) {
	name = domain.NormalizeName(name)
	if name == "" {
		errs.Add("name", "required")
		return
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs.Add("name", "max 200 characters")
	}
}

func validateTags(errs *domain.ValidationError, tags []string) {
	tags = domain.NormalizeTags(tags)
	if len(tags) > MaxTags {
		errs.Add("tags", "max 20 tags")
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > MaxTagLength {
			errs.Add("tags", "max 50 characters per tag")
			break
		}
	}
}
