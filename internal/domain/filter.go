package domain

// ListingFilter defines the window and predicate for listing reads.
type ListingFilter struct {
	// Tag restricts results to listings carrying exactly this tag.
	// nil means no tag predicate.
	Tag *string

	// AnyTag restricts results to listings with at least one tag. It is
	// the "all tags" view of the tag page and is ignored when Tag is set.
	AnyTag bool

	// Sort selects the ordering. Zero value means newest first.
	Sort ListingSort

	// Limit is the window size. Non-positive means no limit.
	Limit int

	// Offset is the number of listings to skip.
	Offset int
}
