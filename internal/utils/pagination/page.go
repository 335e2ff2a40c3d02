package pagination

// Meta is the page metadata returned by offset-paginated list endpoints.
type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewMeta computes page metadata. A negative limit means every row was returned in a
// single page.
func NewMeta(page, limit, total int) Meta {
	if limit < 0 {
		return Meta{Page: 1, Limit: total, Total: total, TotalPages: 1}
	}
	if page < 1 {
		page = 1
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
