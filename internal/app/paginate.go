package app

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of questions per page.
const DefaultPageSize = 10

// ParsePage reads a page number from a raw query value, defaulting to 1 when it is absent or not an integer.
// Integers too large for int saturate, so they still address a page past the end.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	switch {
	case err == nil:
		return page
	case errors.Is(err, strconv.ErrRange):
		if strings.HasPrefix(raw, "-") {
			return math.MinInt
		}
		return math.MaxInt
	default:
		return 1
	}
}

// Paginate returns the items of the given 1-based page. Pages outside the input yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	// compare page counts before multiplying so huge pages cannot overflow the offset
	pages := (len(items) + pageSize - 1) / pageSize
	if page < 1 || page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
