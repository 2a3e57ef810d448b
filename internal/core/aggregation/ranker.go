package aggregation

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultTopN = 10
	MaxTopN     = 100
)

// ClampTopN replaces any count <= 0 or > MaxTopN with DefaultTopN.
func ClampTopN(n int) int {
	if n <= 0 || n > MaxTopN {
		return DefaultTopN
	}
	return n
}

// Group is the set of records sharing one identity, in snapshot order.
type Group[T any] struct {
	Key   string
	Items []T
}

// Partition groups items by identity. Groups are returned in order of first
// appearance; a blank identity groups under FallbackKey.
func Partition[T any](items []T, key func(T) string) []Group[T] {
	index := make(map[string]int)
	var groups []Group[T]
	for _, item := range items {
		k := key(item)
		if strings.TrimSpace(k) == "" {
			k = FallbackKey
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Rank partitions items by identity, reduces every group into an entry and
// returns the ClampTopN(n) entries with the highest primary metric. Ties keep
// first-appearance order, so identical input always ranks identically.
func Rank[T, E any](
	items []T,
	key func(T) string,
	reduce func(Group[T]) E,
	primary func(E) decimal.Decimal,
	n int,
) []E {
	groups := Partition(items, key)

	entries := make([]E, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, reduce(g))
	}

	slices.SortStableFunc(entries, func(a, b E) int {
		return primary(b).Cmp(primary(a))
	})

	if limit := ClampTopN(n); len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
