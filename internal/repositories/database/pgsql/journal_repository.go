package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/contabil_ledger/internal/models"
	"github.com/SscSPs/contabil_ledger/internal/utils/mapping"
	"github.com/SscSPs/contabil_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	journalEntryColumns = `journal_entry_id, title_id, entry_date, origin_type, description, created_at, created_by`
	journalLineColumns  = `journal_line_id, journal_entry_id, account_id, line_type, amount, created_at`
	lineOrder           = ` ORDER BY CASE line_type WHEN 'DEBIT' THEN 0 ELSE 1 END, journal_line_id`
)

// ledgerLineRow is a journal line joined with its entry header.
type ledgerLineRow struct {
	models.JournalLine
	EntryDate   time.Time `db:"entry_date"`
	TitleID     string    `db:"title_id"`
	Description string    `db:"description"`
}

type PgxJournalRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}, accountRepo: accountRepo}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// assemble loads the lines of the given headers, attaches their accounts and returns
// the entries in header order.
func (r *PgxJournalRepository) assemble(ctx context.Context, headers []models.JournalEntry) ([]domain.JournalEntry, error) {
	if len(headers) == 0 {
		return []domain.JournalEntry{}, nil
	}
	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.JournalEntryID
	}
	lines, err := collectAll[models.JournalLine](ctx, r.Pool,
		`SELECT `+journalLineColumns+` FROM journal_lines WHERE journal_entry_id = ANY($1)`+lineOrder, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}

	byEntry := make(map[string][]models.JournalLine, len(headers))
	accountIDs := make([]string, 0, len(lines))
	for _, l := range lines {
		byEntry[l.JournalEntryID] = append(byEntry[l.JournalEntryID], l)
		accountIDs = append(accountIDs, l.AccountID)
	}
	accounts, err := r.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		e := mapping.ToDomainJournalEntry(h, byEntry[h.JournalEntryID])
		for j := range e.Lines {
			if acc, ok := accounts[e.Lines[j].AccountID]; ok {
				e.Lines[j].Account = &acc
			}
		}
		entries[i] = e
	}
	return entries, nil
}

// entriesByTitleIDs returns the journal entry of each title keyed by title id.
func (r *PgxJournalRepository) entriesByTitleIDs(ctx context.Context, titleIDs []string) (map[string]domain.JournalEntry, error) {
	result := make(map[string]domain.JournalEntry, len(titleIDs))
	if len(titleIDs) == 0 {
		return result, nil
	}
	headers, err := collectAll[models.JournalEntry](ctx, r.Pool,
		`SELECT `+journalEntryColumns+` FROM journal_entries WHERE title_id = ANY($1)`, titleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries by title: %w", err)
	}
	entries, err := r.assemble(ctx, headers)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		result[e.TitleID] = e
	}
	return result, nil
}

func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	h, err := collectOne[models.JournalEntry](ctx, r.Pool,
		`SELECT `+journalEntryColumns+` FROM journal_entries WHERE journal_entry_id = $1`, journalEntryID)
	if err != nil {
		return nil, mapReadError(err, "journal entry", journalEntryID)
	}
	entries, err := r.assemble(ctx, []models.JournalEntry{h})
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// keyset turns an optional page token into a row-comparison condition and its arguments.
// Rows are read newest first, so the next page holds rows strictly below the cursor.
func keyset(nextToken *string, dateCol, createdCol, idCol string) (string, []any, error) {
	if nextToken == nil {
		return "", nil, nil
	}
	c, err := pagination.DecodeCursor(*nextToken)
	if err != nil {
		return "", nil, apperrors.Validation(apperrors.NewFieldError("nextToken", err.Error()))
	}
	cond := fmt.Sprintf("(%s, %s, %s) < ($1, $2, $3)", dateCol, createdCol, idCol)
	return cond, []any{c.Date, c.CreatedAt, c.ID}, nil
}

// trimPage cuts a result fetched with limit+1 rows down to limit and builds the next token.
func trimPage[T any](rows []T, limit int, cursorOf func(T) pagination.Cursor) ([]T, *string) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	next := pagination.EncodeCursor(cursorOf(rows[limit-1]))
	return rows, &next
}

func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	cond, args, err := keyset(nextToken, "entry_date", "created_at", "journal_entry_id")
	if err != nil {
		return nil, nil, err
	}
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries`
	if cond != "" {
		query += " WHERE " + cond
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY entry_date DESC, created_at DESC, journal_entry_id DESC LIMIT $%d", len(args))

	headers, err := collectAll[models.JournalEntry](ctx, r.Pool, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	headers, next := trimPage(headers, limit, func(h models.JournalEntry) pagination.Cursor {
		return pagination.Cursor{Date: h.EntryDate, CreatedAt: h.CreatedAt, ID: h.JournalEntryID}
	})
	entries, err := r.assemble(ctx, headers)
	if err != nil {
		return nil, nil, err
	}
	return entries, next, nil
}

func (r *PgxJournalRepository) ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerLine, *string, error) {
	cond, args, err := keyset(nextToken, "e.entry_date", "l.created_at", "l.journal_line_id")
	if err != nil {
		return nil, nil, err
	}
	args = append(args, accountID)
	query := fmt.Sprintf(`
		SELECT l.journal_line_id, l.journal_entry_id, l.account_id, l.line_type, l.amount, l.created_at,
			e.entry_date, e.title_id, e.description
		FROM journal_lines l
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		WHERE l.account_id = $%d`, len(args))
	if cond != "" {
		query += " AND " + cond
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY e.entry_date DESC, l.created_at DESC, l.journal_line_id DESC LIMIT $%d", len(args))

	rows, err := collectAll[ledgerLineRow](ctx, r.Pool, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list ledger lines for account %s: %w", accountID, err)
	}
	rows, next := trimPage(rows, limit, func(l ledgerLineRow) pagination.Cursor {
		return pagination.Cursor{Date: l.EntryDate, CreatedAt: l.CreatedAt, ID: l.JournalLineID}
	})

	lines := make([]domain.LedgerLine, len(rows))
	for i, row := range rows {
		lines[i] = domain.LedgerLine{
			JournalLine: mapping.ToDomainJournalLine(row.JournalLine),
			EntryDate:   row.EntryDate,
			TitleID:     row.TitleID,
			Description: row.Description,
		}
	}
	return lines, next, nil
}

func (r *PgxJournalRepository) BalanceThroughLine(ctx context.Context, accountID string, line domain.LedgerLine) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(CASE WHEN l.line_type = 'DEBIT' THEN l.amount ELSE -l.amount END), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		WHERE l.account_id = $1
			AND (e.entry_date, l.created_at, l.journal_line_id) <= ($2, $3, $4)`

	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, line.EntryDate, line.CreatedAt, line.JournalLineID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger lines for account %s: %w", accountID, err)
	}
	return balance, nil
}
