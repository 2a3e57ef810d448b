package query

// Predicate reports whether a record belongs to the filtered set.
type Predicate[T any] func(T) bool

// Filter is an ordered list of independent predicates combined with AND.
// An absent parameter contributes no predicate at all, so an empty Filter
// matches every record.
type Filter[T any] struct {
	predicates []Predicate[T]
}

// NewFilter returns an empty filter.
func NewFilter[T any]() *Filter[T] {
	return &Filter[T]{}
}

// Where appends an unconditional predicate.
func (f *Filter[T]) Where(p Predicate[T]) *Filter[T] {
	if p != nil {
		f.predicates = append(f.predicates, p)
	}
	return f
}

// Len returns the number of predicates applied.
func (f *Filter[T]) Len() int {
	return len(f.predicates)
}

// Match reports whether item satisfies every predicate.
func (f *Filter[T]) Match(item T) bool {
	for _, p := range f.predicates {
		if !p(item) {
			return false
		}
	}
	return true
}

// Apply returns the records that satisfy every predicate, preserving input
// order. The result is never nil.
func (f *Filter[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

// When appends the predicate built from *v if the optional parameter v is
// present. A nil v adds nothing.
func When[T, V any](f *Filter[T], v *V, build func(V) Predicate[T]) *Filter[T] {
	if v == nil {
		return f
	}
	return f.Where(build(*v))
}
