package domain

// ListingSort selects the ordering of paginated listing pages.
type ListingSort string

const (
	// ListingSortNewest orders by creation time, newest first.
	ListingSortNewest ListingSort = "created_at"
	// ListingSortName orders alphabetically by name.
	ListingSortName ListingSort = "name"
)

func (s ListingSort) String() string { return string(s) }

// IsValid reports whether s is a known ordering.
func (s ListingSort) IsValid() bool {
	switch s {
	case ListingSortNewest, ListingSortName:
		return true
	}
	return false
}
