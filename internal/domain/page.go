package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of listings per page.
const DefaultPageSize = 4

// NormalizePage coerces a requested page number to at least 1.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ParsePage reads a page number from a query-string value. Absent or
// unparseable input yields page 1. Numbers too large for int saturate so
// they still land past the end.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && n > 0 {
			return math.MaxInt
		}
		return 1
	}
	return NormalizePage(n)
}

// Offset returns the number of items preceding page, saturating at
// math.MaxInt instead of overflowing.
func Offset(page, limit int) int {
	page = NormalizePage(page)
	if limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// TotalPages returns ceil(count/limit), never less than 1.
func TotalPages(count, limit int) int {
	if limit <= 0 || count <= 0 {
		return 1
	}
	return (count + limit - 1) / limit
}

// Page is one window of an ordered collection.
type Page[T any] struct {
	Items      []T
	Page       int
	Limit      int
	TotalCount int
	TotalPages int
	Skip       int
}

// NewPage assembles a Page from a fetched window and the total count.
func NewPage[T any](items []T, page, limit, totalCount int) Page[T] {
	page = NormalizePage(page)
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: TotalPages(totalCount, limit),
		Skip:       Offset(page, limit),
	}
}

// PastEnd reports whether the request landed beyond the last page. Callers
// redirect to TotalPages instead of serving an empty window.
func (p Page[T]) PastEnd() bool {
	return len(p.Items) == 0 && p.Skip > 0
}
