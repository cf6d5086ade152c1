package utils

import "math"

// MaxPageSize caps how many items a single page may hold.
const MaxPageSize = 100

// Pagination represents the pagination details.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// CreatePagination creates a Pagination object.
func CreatePagination(totalItems, page, pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = 10 // Default page size
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page <= 0 {
		page = 1 // Default page
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return &Pagination{
		TotalItems:  totalItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}

// Bounds returns the slice window [start, end) of the current page.
func (p *Pagination) Bounds() (int, int) {
	if p.CurrentPage > p.TotalPages {
		return p.TotalItems, p.TotalItems
	}
	start := (p.CurrentPage - 1) * p.PageSize
	end := start + p.PageSize
	if end > p.TotalItems {
		end = p.TotalItems
	}
	return start, end
}
