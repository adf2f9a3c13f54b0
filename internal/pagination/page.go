package pagination

// Page is the uniform envelope of every paginated listing.
type Page[T any] struct {
	Rows         []T   `json:"rows"`
	TotalRows    int64 `json:"totalRows"`
	TotalPages   int64 `json:"totalPages"`
	LimitPerPage int   `json:"limitPerPage"`
	CurrentPage  int   `json:"currentPage"`
	NextPage     *int  `json:"nextPage"`
	PrevPage     *int  `json:"prevPage"`
}

func New[T any](rows []T, totalRows int64, limitPerPage, page int) Page[T] {
	if rows == nil {
		rows = []T{}
	}
	totalPages := int64(0)
	if limitPerPage > 0 {
		totalPages = (totalRows + int64(limitPerPage) - 1) / int64(limitPerPage)
	}

	p := Page[T]{
		Rows:         rows,
		TotalRows:    totalRows,
		TotalPages:   totalPages,
		LimitPerPage: limitPerPage,
		CurrentPage:  page,
	}
	if page >= 1 && int64(page) < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 && int64(page) <= totalPages {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}

func Offset(page, limitPerPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limitPerPage
}
