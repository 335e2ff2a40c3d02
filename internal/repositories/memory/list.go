package memory

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// sortKey extracts the value a list is ordered by.
type sortKey[T any] func(T) any

// paginate sorts rows by opts and cuts out the requested page. It returns the page and
// the number of rows before paging.
func paginate[T any](rows []T, opts domain.ListOptions, keys map[string]sortKey[T]) ([]T, int) {
	key, ok := keys[opts.SortBy]
	if !ok {
		key = keys["createdAt"]
	}
	desc := opts.SortOrder != domain.SortAsc
	sort.SliceStable(rows, func(i, j int) bool {
		c := compare(key(rows[i]), key(rows[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})

	total := len(rows)
	if opts.Limit == domain.AllRecords {
		return rows, total
	}
	start := opts.Offset()
	if start >= total {
		return []T{}, total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	return rows[start:end], total
}

func compare(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		return av.Compare(b.(time.Time))
	case decimal.Decimal:
		return av.Cmp(b.(decimal.Decimal))
	case int:
		bv := b.(int)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case string:
		return strings.Compare(strings.ToLower(av), strings.ToLower(b.(string)))
	}
	return 0
}

// containsFold reports whether any of fields contains term, ignoring case. An empty
// term matches everything.
func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func inDateRange(t time.Time, opts domain.ListOptions) bool {
	if opts.DateFrom != nil && t.Before(*opts.DateFrom) {
		return false
	}
	if opts.DateTo != nil && t.After(*opts.DateTo) {
		return false
	}
	return true
}
