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

const partnerColumns = `partner_id, name, address, document, status, created_at, created_by, last_updated_at, last_updated_by`

var partnerSortColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
}

type PgxPartnerRepository struct {
	BaseRepository
}

func newPgxPartnerRepository(pool *pgxpool.Pool) *PgxPartnerRepository {
	return &PgxPartnerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	m, err := collectOne[models.Partner](ctx, r.Pool,
		`SELECT `+partnerColumns+` FROM partners WHERE partner_id = $1`, partnerID)
	if err != nil {
		return nil, mapReadError(err, "partner", partnerID)
	}
	p := mapping.ToDomainPartner(m)
	return &p, nil
}

// findByIDs returns partners keyed by id.
func (r *PgxPartnerRepository) findByIDs(ctx context.Context, ids []string) (map[string]domain.Partner, error) {
	result := make(map[string]domain.Partner, len(ids))
	ids = wellFormedIDs(ids)
	if len(ids) == 0 {
		return result, nil
	}
	rows, err := collectAll[models.Partner](ctx, r.Pool,
		`SELECT `+partnerColumns+` FROM partners WHERE partner_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners by ids: %w", err)
	}
	for _, m := range rows {
		result[m.PartnerID] = mapping.ToDomainPartner(m)
	}
	return result, nil
}

func (r *PgxPartnerRepository) ListPartners(ctx context.Context, filter domain.PartnerFilter) ([]domain.Partner, int, error) {
	q := &listQuery{}
	if filter.Name != "" {
		q.where("name ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Status != nil {
		q.where("status = $%d", string(*filter.Status))
	}
	q.search(filter.Search, "name", "document", "address")
	q.dateRange("created_at", filter.ListOptions)

	rows, total, err := queryPage[models.Partner](ctx, r.Pool, "partners", partnerColumns, q, filter.ListOptions, partnerSortColumns, "partner_id")
	if err != nil {
		return nil, 0, err
	}
	partners := make([]domain.Partner, len(rows))
	for i, m := range rows {
		partners[i] = mapping.ToDomainPartner(m)
	}
	return partners, total, nil
}

func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	m := mapping.ToModelPartner(partner)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO partners (`+partnerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.PartnerID, m.Name, m.Address, m.Document, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapWriteError(err, "partner")
}

func (r *PgxPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	m := mapping.ToModelPartner(partner)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE partners
		SET name = $2, address = $3, document = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE partner_id = $1`,
		m.PartnerID, m.Name, m.Address, m.Document, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "partner")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("partner", partner.PartnerID)
	}
	return nil
}

func (r *PgxPartnerRepository) DeletePartner(ctx context.Context, partnerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM partners WHERE partner_id = $1`, partnerID)
	if err != nil {
		return mapDeleteError(err, "partner", partnerID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("partner", partnerID)
	}
	return nil
}
