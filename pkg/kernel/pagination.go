package kernel

// PaginationOptions carries page parameters from the API layer to repositories.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// DefaultPaginationOptions returns sane defaults for unset options.
func DefaultPaginationOptions() PaginationOptions {
	return PaginationOptions{Page: 1, PageSize: 20}
}

// Normalize clamps pagination options to valid ranges.
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
	return p
}

// Offset returns the SQL offset for the options.
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageInfo describes the position of a page within the full result set.
type PageInfo struct {
	Number     int `json:"number"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginated wraps a page of items with its page metadata.
type Paginated[T any] struct {
	Items []T      `json:"items"`
	Page  PageInfo `json:"page"`
	Empty bool     `json:"empty"`
}

// NewPaginated builds a Paginated result from a page of items.
func NewPaginated[T any](items []T, page, pageSize, total int) Paginated[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Paginated[T]{
		Items: items,
		Page: PageInfo{
			Number:     page,
			Size:       pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
		Empty: len(items) == 0,
	}
}
