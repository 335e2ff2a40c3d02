package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// listQuery accumulates WHERE conditions with numbered placeholders.
type listQuery struct {
	conds []string
	args  []any
}

// where adds a condition. Each %d in cond is replaced by the placeholder of the next
// argument, so one argument may be referenced several times.
func (q *listQuery) where(cond string, arg any) {
	q.args = append(q.args, arg)
	n := len(q.args)
	q.conds = append(q.conds, strings.ReplaceAll(cond, "%d", strconv.Itoa(n)))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// search adds a case-insensitive substring match across columns. Wildcards in term
// match literally.
func (q *listQuery) search(term string, columns ...string) {
	if term == "" {
		return
	}
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + ` ILIKE $%d ESCAPE '\'`
	}
	q.where("("+strings.Join(parts, " OR ")+")", "%"+likeEscaper.Replace(term)+"%")
}

// dateRange bounds column by the options' dates.
func (q *listQuery) dateRange(column string, opts domain.ListOptions) {
	if opts.DateFrom != nil {
		q.where(column+" >= $%d", *opts.DateFrom)
	}
	if opts.DateTo != nil {
		q.where(column+" <= $%d", *opts.DateTo)
	}
}

func (q *listQuery) whereClause() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// orderClause picks a whitelisted sort column. Unknown keys fall back to created_at.
func orderClause(opts domain.ListOptions, columns map[string]string, tieBreaker string) string {
	col, ok := columns[opts.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if opts.SortOrder == domain.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, %s %s", col, dir, tieBreaker, dir)
}

// queryPage runs the count and the page query concurrently on the pool and scans rows
// into M by column name.
func queryPage[M any](ctx context.Context, db *pgxpool.Pool, table, columns string, q *listQuery, opts domain.ListOptions, sortColumns map[string]string, tieBreaker string) ([]M, int, error) {
	where := q.whereClause()

	var total int
	var rows []M
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		countSQL := "SELECT COUNT(*) FROM " + table + where
		if err := db.QueryRow(gctx, countSQL, q.args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count %s: %w", table, err)
		}
		return nil
	})

	g.Go(func() error {
		args := append([]any(nil), q.args...)
		pageSQL := "SELECT " + columns + " FROM " + table + where + orderClause(opts, sortColumns, tieBreaker)
		if opts.Limit != domain.AllRecords {
			args = append(args, opts.Limit, opts.Offset())
			pageSQL += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
		}
		result, err := db.Query(gctx, pageSQL, args...)
		if err != nil {
			return fmt.Errorf("failed to query %s: %w", table, err)
		}
		rows, err = pgx.CollectRows(result, pgx.RowToStructByName[M])
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", table, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// collectAll runs query and scans every row into M by column name.
func collectAll[M any](ctx context.Context, db querier, query string, args ...any) ([]M, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[M])
}

// collectOne runs query and scans exactly one row into M. It returns pgx.ErrNoRows when
// nothing matches.
func collectOne[M any](ctx context.Context, db querier, query string, args ...any) (M, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		var zero M
		return zero, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
}
