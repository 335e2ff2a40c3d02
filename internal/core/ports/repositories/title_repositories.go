package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// TitleReader defines read operations for titles
type TitleReader interface {
	// FindTitleByID loads a title with its movement type (and accounts), partner and journal entry.
	FindTitleByID(ctx context.Context, titleID string) (*domain.Title, error)

	// ListTitles returns one page of titles, each with movement type, partner and journal entry attached, and the total match count.
	ListTitles(ctx context.Context, filter domain.TitleFilter) ([]domain.Title, int, error)
}

// TitleWriter defines write operations for titles
type TitleWriter interface {
	// SaveTitleWithJournal persists a title, its journal entry and every journal line as one unit.
	// Nothing is written when any part fails. A duplicate title code yields apperrors.ErrDuplicate.
	SaveTitleWithJournal(ctx context.Context, title domain.Title, entry domain.JournalEntry) error

	// UpdateTitle overwrites the editable fields of an ACTIVE title. It returns apperrors.ErrConflict
	// when the stored title is no longer ACTIVE.
	UpdateTitle(ctx context.Context, title domain.Title) error

	// TransitionTitleStatus moves a title from one status to another only if it is still in `from`.
	// It returns apperrors.ErrConflict when the stored status differs.
	TransitionTitleStatus(ctx context.Context, titleID string, from, to domain.TitleStatus, paidAt *time.Time, userID string, at time.Time) error

	// DeleteTitleWithJournal removes the title together with its journal entry and lines.
	DeleteTitleWithJournal(ctx context.Context, titleID string) error
}

// TitleRepositoryFacade combines all title repository interfaces
type TitleRepositoryFacade interface {
	TitleReader
	TitleWriter
}
