package model

// Paging bounds. Requests outside the bounds are clamped, not rejected.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is a 1-based page number plus a positive page size.
type PageRequest struct {
	Number int
	Size   int
}

// Normalize clamps the request into valid bounds: number >= 1,
// 1 <= size <= MaxPageSize, with DefaultPageSize substituted for a
// non-positive size.
func (r PageRequest) Normalize() PageRequest {
	if r.Number < 1 {
		r.Number = 1
	}
	if r.Size < 1 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
	return r
}

// Offset returns the number of records preceding the requested page.
func (r PageRequest) Offset() int {
	return (r.Number - 1) * r.Size
}

// Page is one slice of a record collection plus the derived paging facts.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"totalCount"`
	PageNumber  int   `json:"pageNumber"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// NewPage derives totalPages = ceil(totalCount/size) and the neighbor flags.
// A page past the end of the collection is valid and simply has no items.
func NewPage[T any](items []T, totalCount int64, req PageRequest) Page[T] {
	totalPages := int((totalCount + int64(req.Size) - 1) / int64(req.Size))
	return Page[T]{
		Items:       items,
		TotalCount:  totalCount,
		PageNumber:  req.Number,
		PageSize:    req.Size,
		TotalPages:  totalPages,
		HasPrevious: req.Number > 1,
		HasNext:     req.Number < totalPages,
	}
}

// MapPage converts a page's items while keeping the paging facts intact.
// Used by the HTTP layer to expose public views.
func MapPage[T, U any](p Page[T], f func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = f(item)
	}
	return Page[U]{
		Items:       items,
		TotalCount:  p.TotalCount,
		PageNumber:  p.PageNumber,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
}
