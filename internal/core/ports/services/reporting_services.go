package services

import (
	"context"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// ReportingService defines ledger reports. Balances are always derived from journal lines.
type ReportingService interface {
	// GetTrialBalance lists every postable account with its debit, credit and balance as of the given time.
	GetTrialBalance(ctx context.Context, caps domain.Capabilities, asOf time.Time) (*domain.TrialBalance, error)

	// GetBalanceTree returns the chart of accounts with leaf totals rolled up into their ancestors.
	GetBalanceTree(ctx context.Context, caps domain.Capabilities, asOf time.Time) ([]*domain.AccountNode, error)

	// GetIncomeStatement reports revenue, expenses and their result for the period; a nil from starts at the first entry.
	GetIncomeStatement(ctx context.Context, caps domain.Capabilities, from *time.Time, to time.Time) (*domain.IncomeStatement, error)

	// GetBalanceSheet reports assets, liabilities and equity as of the given time.
	GetBalanceSheet(ctx context.Context, caps domain.Capabilities, asOf time.Time) (*domain.BalanceSheet, error)
}
