package query

// DefaultPageSize replaces a page size below 1.
const DefaultPageSize = 10

// PaginationParams are the caller-controlled list parameters.
type PaginationParams struct {
	PageNumber int    `json:"page_number" form:"pageNumber"`
	PageSize   int    `json:"page_size" form:"pageSize"`
	SortBy     string `json:"sort_by,omitempty" form:"sortBy"`
	SortOrder  string `json:"sort_order,omitempty" form:"sortOrder"`
}

// Normalized clamps the page number to >= 1 and substitutes defaultSize for
// a page size below 1. Nothing is ever rejected.
func (p PaginationParams) Normalized(defaultSize int) PaginationParams {
	if defaultSize < 1 {
		defaultSize = DefaultPageSize
	}
	n := p
	if n.PageNumber < 1 {
		n.PageNumber = 1
	}
	if n.PageSize < 1 {
		n.PageSize = defaultSize
	}
	return n
}

// PagedResult is one page of a filtered, sorted set.
// TotalCount is measured before slicing.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices an already filtered and sorted sequence. A page beyond
// TotalPages yields empty Items.
func Paginate[T any](items []T, p PaginationParams) PagedResult[T] {
	p = p.Normalized(DefaultPageSize)

	total := len(items)
	totalPages := total / p.PageSize
	if total%p.PageSize != 0 {
		totalPages++
	}

	// Range is decided before multiplying so huge sizes cannot overflow skip.
	page := make([]T, 0, min(p.PageSize, total))
	if p.PageNumber-1 < totalPages {
		skip := (p.PageNumber - 1) * p.PageSize
		end := skip + min(p.PageSize, total-skip)
		page = append(page, items[skip:end]...)
	}

	return PagedResult[T]{
		Items:      page,
		TotalCount: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}

// List runs filter, then sort, then paginate. The intermediate slice is a
// copy, so the caller's snapshot is never reordered.
func List[T any](items []T, filter *Filter[T], sorter *Sorter[T], p PaginationParams) PagedResult[T] {
	filtered := filter.Apply(items)
	sorter.Sort(filtered, p.SortBy, p.SortOrder)
	return Paginate(filtered, p)
}

// MapItems converts the items of a page, keeping its counters.
func MapItems[T, U any](p PagedResult[T], convert func(T) U) PagedResult[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = convert(item)
	}
	return PagedResult[U]{
		Items:      items,
		TotalCount: p.TotalCount,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
