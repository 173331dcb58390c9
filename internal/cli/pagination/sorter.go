package pagination

import (
	"fmt"
	"sort"
	"strings"
)

// Less reports whether a sorts before b in ascending order.
type Less[T any] func(a, b T) bool

// Sorter sorts a list by one of a fixed set of fields.
type Sorter[T any] struct {
	fields map[string]Less[T]
}

// NewSorter returns a sorter over the given fields.
func NewSorter[T any](fields map[string]Less[T]) *Sorter[T] {
	return &Sorter[T]{fields: fields}
}

// ValidFields returns the sortable field names, sorted.
func (s *Sorter[T]) ValidFields() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sort returns a sorted copy of items according to the expression
// "field[:order]". An empty expression returns an unsorted copy.
func (s *Sorter[T]) Sort(items []T, expr string) ([]T, error) {
	out := make([]T, len(items))
	copy(out, items)
	if strings.TrimSpace(expr) == "" {
		return out, nil
	}

	field, order, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	less, ok := s.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.ValidFields(), ", "))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == SortOrderDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}
