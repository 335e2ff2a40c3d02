package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/contabil_ledger/internal/models"
	"github.com/SscSPs/contabil_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const titleColumns = `title_id, code, description, title_date, value, status, movement_type_id, partner_id, paid_at,
	created_at, created_by, last_updated_at, last_updated_by`

var titleSortColumns = map[string]string{
	"createdAt": "created_at",
	"date":      "title_date",
	"code":      "code",
	"value":     "value",
}

type PgxTitleRepository struct {
	BaseRepository
	movementTypeRepo *PgxMovementTypeRepository
	partnerRepo      *PgxPartnerRepository
	journalRepo      *PgxJournalRepository
}

func newPgxTitleRepository(pool *pgxpool.Pool, movementTypeRepo *PgxMovementTypeRepository, partnerRepo *PgxPartnerRepository, journalRepo *PgxJournalRepository) *PgxTitleRepository {
	return &PgxTitleRepository{
		BaseRepository:   BaseRepository{Pool: pool},
		movementTypeRepo: movementTypeRepo,
		partnerRepo:      partnerRepo,
		journalRepo:      journalRepo,
	}
}

var _ portsrepo.TitleRepositoryFacade = (*PgxTitleRepository)(nil)

// hydrate attaches movement types, partners and journal entries with one query per relation.
func (r *PgxTitleRepository) hydrate(ctx context.Context, rows []models.Title) ([]domain.Title, error) {
	titles := make([]domain.Title, len(rows))
	titleIDs := make([]string, len(rows))
	movementTypeIDs := make([]string, 0, len(rows))
	partnerIDs := make([]string, 0, len(rows))
	for i, m := range rows {
		titles[i] = mapping.ToDomainTitle(m)
		titleIDs[i] = m.TitleID
		movementTypeIDs = append(movementTypeIDs, m.MovementTypeID)
		if m.PartnerID != nil {
			partnerIDs = append(partnerIDs, *m.PartnerID)
		}
	}

	movementTypes, err := r.movementTypeRepo.findByIDs(ctx, movementTypeIDs)
	if err != nil {
		return nil, err
	}
	partners, err := r.partnerRepo.findByIDs(ctx, partnerIDs)
	if err != nil {
		return nil, err
	}
	entries, err := r.journalRepo.entriesByTitleIDs(ctx, titleIDs)
	if err != nil {
		return nil, err
	}

	for i := range titles {
		t := &titles[i]
		if mt, ok := movementTypes[t.MovementTypeID]; ok {
			t.MovementType = &mt
		}
		if t.PartnerID != nil {
			if p, ok := partners[*t.PartnerID]; ok {
				t.Partner = &p
			}
		}
		if e, ok := entries[t.TitleID]; ok {
			t.Journal = &e
		}
	}
	return titles, nil
}

func (r *PgxTitleRepository) FindTitleByID(ctx context.Context, titleID string) (*domain.Title, error) {
	m, err := collectOne[models.Title](ctx, r.Pool,
		`SELECT `+titleColumns+` FROM titles WHERE title_id = $1`, titleID)
	if err != nil {
		return nil, mapReadError(err, "title", titleID)
	}
	titles, err := r.hydrate(ctx, []models.Title{m})
	if err != nil {
		return nil, err
	}
	return &titles[0], nil
}

func (r *PgxTitleRepository) ListTitles(ctx context.Context, filter domain.TitleFilter) ([]domain.Title, int, error) {
	q := &listQuery{}
	if filter.Status != nil {
		q.where("status = $%d", string(*filter.Status))
	}
	if filter.MovementTypeID != "" {
		q.where("movement_type_id = $%d", filter.MovementTypeID)
	}
	if filter.PartnerID != "" {
		q.where("partner_id = $%d", filter.PartnerID)
	}
	q.search(filter.Search, "code", "description")
	q.dateRange("title_date", filter.ListOptions)

	rows, total, err := queryPage[models.Title](ctx, r.Pool, "titles", titleColumns, q, filter.ListOptions, titleSortColumns, "title_id")
	if err != nil {
		return nil, 0, err
	}
	titles, err := r.hydrate(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return titles, total, nil
}

// SaveTitleWithJournal inserts the title, the entry header and the lines in one transaction.
func (r *PgxTitleRepository) SaveTitleWithJournal(ctx context.Context, title domain.Title, entry domain.JournalEntry) error {
	if entry.TitleID != title.TitleID {
		return fmt.Errorf("%w: journal entry belongs to title %s", apperrors.ErrValidation, entry.TitleID)
	}
	if !entry.IsBalanced() {
		return fmt.Errorf("%w: journal entry is not balanced", apperrors.ErrValidation)
	}

	return r.inTx(ctx, func(tx pgx.Tx) error {
		t := mapping.ToModelTitle(title)
		_, err := tx.Exec(ctx, `
			INSERT INTO titles (`+titleColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			t.TitleID, t.Code, t.Description, t.TitleDate, t.Value, t.Status, t.MovementTypeID, t.PartnerID, t.PaidAt,
			t.CreatedAt, t.CreatedBy, t.LastUpdatedAt, t.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "title")
		}

		e := mapping.ToModelJournalEntry(entry)
		_, err = tx.Exec(ctx, `
			INSERT INTO journal_entries (`+journalEntryColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.JournalEntryID, e.TitleID, e.EntryDate, e.OriginType, e.Description, e.CreatedAt, e.CreatedBy,
		)
		if err != nil {
			return mapWriteError(err, "journal entry")
		}

		batch := &pgx.Batch{}
		for _, line := range entry.Lines {
			line.JournalEntryID = entry.JournalEntryID
			l := mapping.ToModelJournalLine(line)
			batch.Queue(`
				INSERT INTO journal_lines (`+journalLineColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				l.JournalLineID, l.JournalEntryID, l.AccountID, l.LineType, l.Amount, l.CreatedAt,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range entry.Lines {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return mapWriteError(err, "journal line")
			}
		}
		return br.Close()
	})
}

// conflictOrNotFound explains why a conditional update touched no row.
func (r *PgxTitleRepository) conflictOrNotFound(ctx context.Context, titleID string) error {
	var status string
	err := r.Pool.QueryRow(ctx, `SELECT status FROM titles WHERE title_id = $1`, titleID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError("title", titleID)
	}
	if err != nil {
		return fmt.Errorf("failed to load title %s: %w", titleID, err)
	}
	return fmt.Errorf("%w: title is %s", apperrors.ErrConflict, status)
}

func (r *PgxTitleRepository) UpdateTitle(ctx context.Context, title domain.Title) error {
	t := mapping.ToModelTitle(title)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE titles
		SET code = $2, description = $3, title_date = $4, value = $5, movement_type_id = $6, partner_id = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE title_id = $1 AND status = 'ACTIVE'`,
		t.TitleID, t.Code, t.Description, t.TitleDate, t.Value, t.MovementTypeID, t.PartnerID,
		t.LastUpdatedAt, t.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "title")
	}
	if tag.RowsAffected() == 0 {
		return r.conflictOrNotFound(ctx, title.TitleID)
	}
	return nil
}

func (r *PgxTitleRepository) TransitionTitleStatus(ctx context.Context, titleID string, from, to domain.TitleStatus, paidAt *time.Time, userID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE titles
		SET status = $3, paid_at = COALESCE($4, paid_at), last_updated_at = $5, last_updated_by = $6
		WHERE title_id = $1 AND status = $2`,
		titleID, string(from), string(to), paidAt, at, userID,
	)
	if err != nil {
		return mapWriteError(err, "title")
	}
	if tag.RowsAffected() == 0 {
		return r.conflictOrNotFound(ctx, titleID)
	}
	return nil
}

// DeleteTitleWithJournal removes lines, entry and title in one transaction.
func (r *PgxTitleRepository) DeleteTitleWithJournal(ctx context.Context, titleID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM journal_lines
			WHERE journal_entry_id IN (SELECT journal_entry_id FROM journal_entries WHERE title_id = $1)`, titleID); err != nil {
			return mapDeleteError(err, "journal line", titleID)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE title_id = $1`, titleID); err != nil {
			return mapDeleteError(err, "journal entry", titleID)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM titles WHERE title_id = $1`, titleID)
		if err != nil {
			return mapDeleteError(err, "title", titleID)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("title", titleID)
		}
		return nil
	})
}
