package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammerlot/auctiondex/internal/domain"
)

// Limits carries the configured default and maximum result caps.
type Limits struct {
	Default int
	Max     int
}

// Filter is the validated set of optional price/limit constraints applied to
// a list, search, or similarity operation.
type Filter struct {
	minPrice *float64
	maxPrice *float64
	limit    int
}

// NewFilter creates a Filter from already-typed values. limit <= 0 is
// normalized to the default.
func NewFilter(minPrice, maxPrice *float64, limit int, lims Limits) Filter {
	return Filter{minPrice: minPrice, maxPrice: maxPrice, limit: clampLimit(limit, lims)}
}

// ParseFilter parses raw query-parameter strings into a Filter. Empty strings
// mean "absent". Malformed numeric values are rejected with ErrInvalidFilter
// rather than silently coerced.
func ParseFilter(minPrice, maxPrice, limit string, lims Limits) (Filter, error) {
	var f Filter

	lo, err := parsePrice("minPrice", minPrice)
	if err != nil {
		return Filter{}, err
	}
	hi, err := parsePrice("maxPrice", maxPrice)
	if err != nil {
		return Filter{}, err
	}
	f.minPrice = lo
	f.maxPrice = hi

	n := 0
	if s := strings.TrimSpace(limit); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed <= 0 {
			return Filter{}, fmt.Errorf("%w: limit must be a positive integer, got %q", domain.ErrInvalidFilter, limit)
		}
		n = parsed
	}
	f.limit = clampLimit(n, lims)

	return f, nil
}

// MinPrice returns the lower start_price bound, nil when absent.
func (f Filter) MinPrice() *float64 { return f.minPrice }

// MaxPrice returns the upper start_price bound, nil when absent.
func (f Filter) MaxPrice() *float64 { return f.maxPrice }

// Limit returns the effective result cap (always positive after parsing).
func (f Filter) Limit() int { return f.limit }

func parsePrice(name, raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be numeric, got %q", domain.ErrInvalidFilter, name, raw)
	}
	return &v, nil
}

func clampLimit(n int, lims Limits) int {
	if n <= 0 {
		n = lims.Default
	}
	if lims.Max > 0 && n > lims.Max {
		n = lims.Max
	}
	if n <= 0 {
		n = 20
	}
	return n
}
