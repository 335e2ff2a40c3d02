package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

type accountTotalsRow struct {
	AccountID   string          `db:"account_id"`
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
}

func (r *PgxReportingRepository) GetAccountTotals(ctx context.Context, asOf time.Time) (map[string]domain.AccountTotals, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT l.account_id,
			COALESCE(SUM(CASE WHEN l.line_type = 'DEBIT' THEN l.amount END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN l.line_type = 'CREDIT' THEN l.amount END), 0) AS total_credit
		FROM journal_lines l
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		WHERE e.entry_date <= $1
		GROUP BY l.account_id`, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query account totals: %w", err)
	}
	totals, err := pgx.CollectRows(rows, pgx.RowToStructByName[accountTotalsRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan account totals: %w", err)
	}

	result := make(map[string]domain.AccountTotals, len(totals))
	for _, t := range totals {
		result[t.AccountID] = domain.NewAccountTotals(t.TotalDebit, t.TotalCredit)
	}
	return result, nil
}
