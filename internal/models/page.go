package models

// Page is one page of a filtered, sorted result set. TotalRecords always
// counts the whole filtered set, not the slice carried in Data.
type Page[T any] struct {
	Data         []T
	TotalRecords int
	CurrentPage  int
	PageSize     int
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalRecords + p.PageSize - 1) / p.PageSize
}

// Paginate slices the full filtered set down to the requested page and wraps
// it with the pre-pagination total.
func Paginate[T any](data []T, page, pageSize int) Page[T] {
	result := Page[T]{
		Data:         []T{},
		TotalRecords: len(data),
		CurrentPage:  page,
		PageSize:     pageSize,
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	if offset >= len(data) {
		return result
	}

	end := offset + pageSize
	if end > len(data) {
		end = len(data)
	}
	result.Data = data[offset:end]

	return result
}
