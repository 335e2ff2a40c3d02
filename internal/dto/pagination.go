package dto

import (
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// ListParams defines the query parameters shared by every offset-paginated list.
type ListParams struct {
	Page      int       `form:"page,default=1" binding:"min=1"`
	Limit     int       `form:"limit,default=10" binding:"min=-1,max=500"` // -1 returns every row
	Search    string    `form:"search"`
	SortBy    string    `form:"sortBy"`
	SortOrder string    `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	DateFrom  time.Time `form:"dateFrom" time_format:"2006-01-02" time_utc:"1"`
	DateTo    time.Time `form:"dateTo" time_format:"2006-01-02" time_utc:"1"`
}

// ToListOptions converts the query parameters into domain list options. DateTo is
// inclusive of the whole day.
func (p ListParams) ToListOptions() domain.ListOptions {
	opts := domain.ListOptions{
		Page:      p.Page,
		Limit:     p.Limit,
		Search:    p.Search,
		SortBy:    p.SortBy,
		SortOrder: domain.SortOrder(p.SortOrder),
	}
	if !p.DateFrom.IsZero() {
		from := p.DateFrom
		opts.DateFrom = &from
	}
	if !p.DateTo.IsZero() {
		to := p.DateTo.Add(24*time.Hour - time.Nanosecond)
		opts.DateTo = &to
	}
	return opts.Normalize()
}

// CursorParams defines query parameters for token-paginated lists.
type CursorParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// Token returns the next token as a pointer, nil when absent.
func (p CursorParams) Token() *string {
	if p.NextToken == "" {
		return nil
	}
	return &p.NextToken
}
