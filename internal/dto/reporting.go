package dto

import (
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// ReportParams defines the query parameters of ledger reports.
type ReportParams struct {
	AsOf time.Time `form:"asOf" time_format:"2006-01-02" time_utc:"1"` // defaults to now; inclusive of the whole day
}

// AsOfOrNow returns the end of the requested day, or now when no date was given.
func (p ReportParams) AsOfOrNow(now time.Time) time.Time {
	if p.AsOf.IsZero() {
		return now
	}
	return p.AsOf.Add(24*time.Hour - time.Nanosecond)
}

// TrialBalanceResponse is the trial balance report.
type TrialBalanceResponse struct {
	AsOf time.Time `json:"asOf"`
	domain.TrialBalance
}

// BalanceTreeResponse is the chart of accounts with rolled-up totals.
type BalanceTreeResponse struct {
	AsOf     time.Time             `json:"asOf"`
	Accounts []AccountNodeResponse `json:"accounts"`
}

// PeriodParams defines the query parameters of period reports.
type PeriodParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"` // inclusive; empty starts at the first entry
	To   time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`   // inclusive of the whole day; defaults to now
}

// Bounds returns the start of From (nil when absent) and the end of To, or now when
// To is absent.
func (p PeriodParams) Bounds(now time.Time) (*time.Time, time.Time) {
	to := ReportParams{AsOf: p.To}.AsOfOrNow(now)
	if p.From.IsZero() {
		return nil, to
	}
	from := p.From
	return &from, to
}

// IncomeStatementResponse is the income statement of a period.
type IncomeStatementResponse struct {
	From *time.Time `json:"from,omitempty"`
	To   time.Time  `json:"to"`
	domain.IncomeStatement
}

// BalanceSheetResponse is the balance sheet at a date.
type BalanceSheetResponse struct {
	AsOf time.Time `json:"asOf"`
	domain.BalanceSheet
}
