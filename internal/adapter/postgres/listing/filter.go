package listing

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/delicious-backend/internal/domain"
)

// applyPredicate adds the WHERE clauses of f. It is shared by List and
// Count so the window and the total always describe the same set.
func applyPredicate(b sq.SelectBuilder, f domain.ListingFilter) sq.SelectBuilder {
	switch {
	case f.Tag != nil:
		b = b.Where("? = ANY(l.tags)", *f.Tag)
	case f.AnyTag:
		b = b.Where("cardinality(l.tags) > 0")
	}
	return b
}

// applyWindow adds ORDER BY, LIMIT and OFFSET. The id tiebreaker keeps
// pages disjoint when sort keys repeat.
func applyWindow(b sq.SelectBuilder, f domain.ListingFilter) sq.SelectBuilder {
	switch f.Sort {
	case domain.ListingSortName:
		b = b.OrderBy("l.name ASC", "l.id ASC")
	default:
		b = b.OrderBy("l.created_at DESC", "l.id DESC")
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	return b
}
