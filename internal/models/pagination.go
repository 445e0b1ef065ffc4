package models

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// NormalizePage clamps page and size into the accepted window.
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// RecordFilter narrows operational record listings.
type RecordFilter struct {
	CreatedBy string
	Page      int
	PageSize  int
}
