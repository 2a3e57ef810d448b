package query

import (
	"slices"
	"strings"
)

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ParseSortOrder maps the literal "desc" to Desc and anything else to Asc.
func ParseSortOrder(s string) SortOrder {
	if s == string(Desc) {
		return Desc
	}
	return Asc
}

// Compare orders two records the way cmp.Compare does.
type Compare[T any] func(a, b T) int

// SortKey names a sortable field of one report type.
type SortKey string

// Sorter is a closed mapping from sort keys to comparators with an explicit
// fallback. Unknown or empty keys always select the fallback, which carries
// its own direction and ignores the requested order.
type Sorter[T any] struct {
	fields   map[SortKey]Compare[T]
	fallback Compare[T]
}

// NewSorter creates a sorter whose default ordering is fallback.
func NewSorter[T any](fallback Compare[T]) *Sorter[T] {
	return &Sorter[T]{
		fields:   make(map[SortKey]Compare[T]),
		fallback: fallback,
	}
}

// On registers an ascending comparator for key. Keys are matched
// case-insensitively.
func (s *Sorter[T]) On(key SortKey, cmp Compare[T]) *Sorter[T] {
	s.fields[SortKey(strings.ToLower(string(key)))] = cmp
	return s
}

// Keys returns the registered sort keys in lexical order.
func (s *Sorter[T]) Keys() []SortKey {
	keys := make([]SortKey, 0, len(s.fields))
	for k := range s.fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Select resolves sortBy/order to a comparator.
func (s *Sorter[T]) Select(sortBy string, order SortOrder) Compare[T] {
	cmp, ok := s.fields[SortKey(strings.ToLower(strings.TrimSpace(sortBy)))]
	if !ok {
		return s.fallback
	}
	if order == Desc {
		return func(a, b T) int { return cmp(b, a) }
	}
	return cmp
}

// Sort sorts items in place. The sort is stable, so records that compare
// equal keep their snapshot order.
func (s *Sorter[T]) Sort(items []T, sortBy string, sortOrder string) {
	slices.SortStableFunc(items, s.Select(sortBy, ParseSortOrder(sortOrder)))
}
