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

const movementTypeColumns = `movement_type_id, name, description, debit_account_id, credit_account_id, status,
	created_at, created_by, last_updated_at, last_updated_by`

var movementTypeSortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
}

type PgxMovementTypeRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

func newPgxMovementTypeRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxMovementTypeRepository {
	return &PgxMovementTypeRepository{BaseRepository: BaseRepository{Pool: pool}, accountRepo: accountRepo}
}

var _ portsrepo.MovementTypeRepositoryFacade = (*PgxMovementTypeRepository)(nil)

// attachAccounts loads the debit and credit accounts of every movement type in one query.
func (r *PgxMovementTypeRepository) attachAccounts(ctx context.Context, mts []domain.MovementType) error {
	ids := make([]string, 0, 2*len(mts))
	for _, m := range mts {
		ids = append(ids, m.DebitAccountID, m.CreditAccountID)
	}
	accounts, err := r.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range mts {
		if acc, ok := accounts[mts[i].DebitAccountID]; ok {
			mts[i].DebitAccount = &acc
		}
		if acc, ok := accounts[mts[i].CreditAccountID]; ok {
			mts[i].CreditAccount = &acc
		}
	}
	return nil
}

// findByIDs returns hydrated movement types keyed by id.
func (r *PgxMovementTypeRepository) findByIDs(ctx context.Context, ids []string) (map[string]domain.MovementType, error) {
	result := make(map[string]domain.MovementType, len(ids))
	ids = wellFormedIDs(ids)
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := collectAll[models.MovementType](ctx, r.Pool,
		`SELECT `+movementTypeColumns+` FROM movement_types WHERE movement_type_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query movement types by ids: %w", err)
	}
	mts := make([]domain.MovementType, len(rows))
	for i, m := range rows {
		mts[i] = mapping.ToDomainMovementType(m)
	}
	if err := r.attachAccounts(ctx, mts); err != nil {
		return nil, err
	}
	for _, m := range mts {
		result[m.MovementTypeID] = m
	}
	return result, nil
}

func (r *PgxMovementTypeRepository) FindMovementTypeByID(ctx context.Context, movementTypeID string) (*domain.MovementType, error) {
	m, err := collectOne[models.MovementType](ctx, r.Pool,
		`SELECT `+movementTypeColumns+` FROM movement_types WHERE movement_type_id = $1`, movementTypeID)
	if err != nil {
		return nil, mapReadError(err, "movement type", movementTypeID)
	}
	mts := []domain.MovementType{mapping.ToDomainMovementType(m)}
	if err := r.attachAccounts(ctx, mts); err != nil {
		return nil, err
	}
	return &mts[0], nil
}

func (r *PgxMovementTypeRepository) ListMovementTypes(ctx context.Context, filter domain.MovementTypeFilter) ([]domain.MovementType, int, error) {
	q := &listQuery{}
	if filter.Name != "" {
		q.where("name ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Status != nil {
		q.where("status = $%d", string(*filter.Status))
	}
	if filter.DebitAccountID != "" {
		q.where("debit_account_id = $%d", filter.DebitAccountID)
	}
	if filter.CreditAccountID != "" {
		q.where("credit_account_id = $%d", filter.CreditAccountID)
	}
	q.search(filter.Search, "name", "description")
	q.dateRange("created_at", filter.ListOptions)

	rows, total, err := queryPage[models.MovementType](ctx, r.Pool, "movement_types", movementTypeColumns, q, filter.ListOptions, movementTypeSortColumns, "movement_type_id")
	if err != nil {
		return nil, 0, err
	}
	mts := make([]domain.MovementType, len(rows))
	for i, m := range rows {
		mts[i] = mapping.ToDomainMovementType(m)
	}
	if err := r.attachAccounts(ctx, mts); err != nil {
		return nil, 0, err
	}
	return mts, total, nil
}

func (r *PgxMovementTypeRepository) CountTitlesByMovementType(ctx context.Context, movementTypeID string) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM titles WHERE movement_type_id = $1`, movementTypeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count titles for movement type %s: %w", movementTypeID, err)
	}
	return n, nil
}

func (r *PgxMovementTypeRepository) SaveMovementType(ctx context.Context, movementType domain.MovementType) error {
	m := mapping.ToModelMovementType(movementType)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO movement_types (`+movementTypeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.MovementTypeID, m.Name, m.Description, m.DebitAccountID, m.CreditAccountID, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapWriteError(err, "movement type")
}

func (r *PgxMovementTypeRepository) UpdateMovementType(ctx context.Context, movementType domain.MovementType) error {
	m := mapping.ToModelMovementType(movementType)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE movement_types
		SET name = $2, description = $3, debit_account_id = $4, credit_account_id = $5, status = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE movement_type_id = $1`,
		m.MovementTypeID, m.Name, m.Description, m.DebitAccountID, m.CreditAccountID, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "movement type")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("movement type", movementType.MovementTypeID)
	}
	return nil
}

func (r *PgxMovementTypeRepository) DeleteMovementType(ctx context.Context, movementTypeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM movement_types WHERE movement_type_id = $1`, movementTypeID)
	if err != nil {
		return mapDeleteError(err, "movement type", movementTypeID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("movement type", movementTypeID)
	}
	return nil
}
