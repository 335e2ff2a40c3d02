package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/contabil_ledger/internal/models"
	"github.com/SscSPs/contabil_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, code, name, description, level, accepts_posting, status, parent_account_id,
	created_at, created_by, last_updated_at, last_updated_by`

var accountSortColumns = map[string]string{
	"createdAt": "created_at",
	"code":      "code",
	"name":      "name",
	"level":     "level",
}

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for the chart of accounts.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	m, err := collectOne[models.Account](ctx, r.Pool,
		`SELECT `+accountColumns+` FROM accounts WHERE account_id = $1`, accountID)
	if err != nil {
		return nil, mapReadError(err, "account", accountID)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	accountIDs = wellFormedIDs(accountIDs)
	if len(accountIDs) == 0 {
		return result, nil
	}
	rows, err := collectAll[models.Account](ctx, r.Pool,
		`SELECT `+accountColumns+` FROM accounts WHERE account_id = ANY($1)`, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by ids: %w", err)
	}
	for _, m := range rows {
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return result, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, int, error) {
	q := &listQuery{}
	if filter.Name != "" {
		q.where("name ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Description != "" {
		q.where("description ILIKE $%d", "%"+filter.Description+"%")
	}
	if filter.Level != nil {
		q.where("level = $%d", *filter.Level)
	}
	if filter.AcceptsPosting != nil {
		q.where("accepts_posting = $%d", *filter.AcceptsPosting)
	}
	if filter.Status != nil {
		q.where("status = $%d", string(*filter.Status))
	}
	if filter.ParentID != nil {
		q.where("parent_account_id = $%d", *filter.ParentID)
	}
	q.search(filter.Search, "code", "name", "description")
	q.dateRange("created_at", filter.ListOptions)

	rows, total, err := queryPage[models.Account](ctx, r.Pool, "accounts", accountColumns, q, filter.ListOptions, accountSortColumns, "account_id")
	if err != nil {
		return nil, 0, err
	}
	return mapping.ToDomainAccountSlice(rows), total, nil
}

func (r *PgxAccountRepository) ListAllAccounts(ctx context.Context, status *domain.Status, acceptsPosting *bool) ([]domain.Account, error) {
	q := &listQuery{}
	if status != nil {
		q.where("status = $%d", string(*status))
	}
	if acceptsPosting != nil {
		q.where("accepts_posting = $%d", *acceptsPosting)
	}
	rows, err := collectAll[models.Account](ctx, r.Pool,
		`SELECT `+accountColumns+` FROM accounts`+q.whereClause()+` ORDER BY code`, q.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list all accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(rows), nil
}

func (r *PgxAccountRepository) ListChildCodes(ctx context.Context, parentID *string) ([]string, error) {
	query := `SELECT code FROM accounts WHERE parent_account_id IS NULL`
	var args []any
	if parentID != nil {
		query = `SELECT code FROM accounts WHERE parent_account_id = $1`
		args = append(args, *parentID)
	}
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list child codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan child code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (r *PgxAccountRepository) AccountUsage(ctx context.Context, accountID string) (int, int, error) {
	var children, lines int
	err := r.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM accounts WHERE parent_account_id = $1),
			(SELECT COUNT(*) FROM journal_lines WHERE account_id = $1)`, accountID).Scan(&children, &lines)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count usage of account %s: %w", accountID, err)
	}
	return children, lines, nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.AccountID, m.Code, m.Name, m.Description, m.Level, m.AcceptsPosting, m.Status, m.ParentAccountID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapWriteError(err, "account")
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE accounts
		SET name = $2, description = $3, accepts_posting = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1`,
		m.AccountID, m.Name, m.Description, m.AcceptsPosting, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "account")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account", account.AccountID)
	}
	return nil
}

// DeleteAccount relies on foreign keys from child accounts, movement types and journal
// lines to refuse deleting an account in use.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1`, accountID)
	if err != nil {
		return mapDeleteError(err, "account", accountID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account", accountID)
	}
	return nil
}
