package domain

import "sort"

// Defaults for RankTopListings and the top listings query.
const (
	// DefaultMinReviews is the review count a listing needs to be ranked.
	DefaultMinReviews = 2
	// DefaultTopLimit caps the number of ranked listings.
	DefaultTopLimit = 10
)

// RatedListing pairs a listing with the ratings of all its reviews.
type RatedListing struct {
	Listing Listing
	Ratings []int
}

// AverageRating returns the arithmetic mean of ratings, or 0 for none.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// RankTopListings keeps listings with at least minReviews reviews, sorts
// them by mean rating descending and returns at most limit entries. Ties
// keep their input order. Non-positive arguments fall back to the defaults.
func RankTopListings(items []RatedListing, minReviews, limit int) []TopListing {
	if minReviews < 1 {
		minReviews = DefaultMinReviews
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	ranked := make([]TopListing, 0, len(items))
	for _, it := range items {
		if len(it.Ratings) < minReviews {
			continue
		}
		ranked = append(ranked, TopListing{
			Listing:     it.Listing,
			AvgRating:   AverageRating(it.Ratings),
			ReviewCount: len(it.Ratings),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AvgRating > ranked[j].AvgRating
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
