package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// ReportingRepository defines data access for ledger reports
type ReportingRepository interface {
	// GetAccountTotals sums journal lines per account for entries dated on or before asOf.
	// Accounts without lines are absent from the map.
	GetAccountTotals(ctx context.Context, asOf time.Time) (map[string]domain.AccountTotals, error)
}
