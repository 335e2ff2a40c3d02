package domain

import "time"

// SortOrder is the direction of a list query.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// AllRecords is the page size that disables paging.
const AllRecords = -1

// ListOptions carries the filter and paging fields shared by every list endpoint.
type ListOptions struct {
	Page      int
	Limit     int // AllRecords returns every matching row
	Search    string
	SortBy    string
	SortOrder SortOrder
	DateFrom  *time.Time
	DateTo    *time.Time
}

// Offset returns the number of rows to skip for the current page.
func (o ListOptions) Offset() int {
	if o.Limit == AllRecords || o.Page <= 1 {
		return 0
	}
	return (o.Page - 1) * o.Limit
}

// Normalize applies defaults: page 1, limit 10, createdAt desc.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit == 0 || o.Limit < AllRecords {
		o.Limit = 10
	}
	if o.SortBy == "" {
		o.SortBy = "createdAt"
	}
	if o.SortOrder != SortAsc {
		o.SortOrder = SortDesc
	}
	return o
}
