package domain

// SortOrder is one ordering clause of a page request.
type SortOrder struct {
	Field string
	Desc  bool
}

// PageRequest selects a zero-based page of a listing.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// BeerPage is one page of beers plus the total count across all pages.
type BeerPage struct {
	Items         []BeerItem
	TotalElements int64
	Page          int
	Size          int
}

// TotalPages returns the number of pages needed to hold TotalElements.
func (p BeerPage) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}
