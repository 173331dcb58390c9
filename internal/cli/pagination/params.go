package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

const sortPartsMax = 2

var (
	// ErrInvalidSortFormat indicates a sort expression with too many parts.
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'co2:desc')")
	// ErrInvalidSortOrder indicates an order other than asc or desc.
	ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")
	// ErrInvalidSortField indicates a field the list cannot be sorted by.
	ErrInvalidSortField = errors.New("invalid sort field")
)

// Params holds the list flags. A zero Limit means no limit.
type Params struct {
	Limit  int
	Offset int
	// Sort is "field" or "field:order".
	Sort string
}

// Validate checks the bounds.
func (p Params) Validate() error {
	if p.Limit < 0 {
		return errors.New("limit cannot be negative")
	}
	if p.Offset < 0 {
		return errors.New("offset cannot be negative")
	}
	return nil
}

// ParseSort splits a sort expression. The order defaults to desc.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(expr string) (field, order string, err error) {
	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}
	field = strings.TrimSpace(parts[0])
	if field == "" {
		return "", "", errors.New("empty sort expression")
	}
	order = SortOrderDesc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}

// Apply returns the window of items selected by p. Offsets past the end
// yield an empty slice.
func Apply[T any](items []T, p Params) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}
