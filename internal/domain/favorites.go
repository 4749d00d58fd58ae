package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Favorites is the set of listing ids a user has hearted, in the order
// they were added.
type Favorites []uuid.UUID

// Contains reports membership of an id given in any textual form uuid.Parse
// accepts.
func (f Favorites) Contains(id string) bool {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return false
	}
	for _, fav := range f {
		if fav == parsed {
			return true
		}
	}
	return false
}

// Toggle returns a new set with id removed if present, or appended if not.
// The receiver is not modified. added reports which branch was taken.
func (f Favorites) Toggle(id uuid.UUID) (result Favorites, added bool) {
	result = make(Favorites, 0, len(f)+1)
	for _, fav := range f {
		if fav == id {
			continue
		}
		result = append(result, fav)
	}
	if len(result) == len(f) {
		return append(result, id), true
	}
	return result, false
}

// Strings returns the ids in their canonical string form.
func (f Favorites) Strings() []string {
	out := make([]string, len(f))
	for i, id := range f {
		out[i] = id.String()
	}
	return out
}
