// Package pagination holds the single slice-pagination implementation shared
// by every service that pages merged or in-memory result sets.
package pagination

// Page is the paginated payload embedded in API responses.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// Slice pages an already-sorted slice. The window start is clamped to the
// slice length, so an out-of-range page yields an empty content list rather
// than an error.
func Slice[T any](items []T, page, size int) Page[T] {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = 1
	}

	total := len(items)
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := items[start:end]
	if content == nil {
		content = []T{}
	}

	return build(content, page, size, int64(total))
}

// FromQuery wraps a page of rows fetched with a database-level limit/offset
// query, given the full row count.
func FromQuery[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return build(content, page, size, total)
}

func build[T any](content []T, page, size int, total int64) Page[T] {
	totalPages := int((total + int64(size) - 1) / int64(size))
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}
