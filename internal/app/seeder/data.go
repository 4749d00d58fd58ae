package seeder

import (
	"encoding/json"
	"fmt"
	"os"
)

// UserRecord is one entry of the users file.
type UserRecord struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LocationRecord is a point with an address.
type LocationRecord struct {
	Lng     float64 `json:"lng"`
	Lat     float64 `json:"lat"`
	Address string  `json:"address"`
}

// ListingRecord is one entry of the listings file. Author is an email from
// the users file.
type ListingRecord struct {
	Author      string          `json:"author"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Photo       *string         `json:"photo"`
	Location    *LocationRecord `json:"location"`
}

// ReviewRecord is one entry of the reviews file. Listing is the listing
// name as it appears in the listings file.
type ReviewRecord struct {
	Author  string `json:"author"`
	Listing string `json:"listing"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
}

func loadJSON[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}
