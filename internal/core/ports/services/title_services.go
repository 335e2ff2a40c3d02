package services

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/dto"
)

// PostingEngine turns a title into its balanced journal entry
type PostingEngine interface {
	// BuildEntry derives the journal entry for a title from its movement type without touching storage.
	BuildEntry(title domain.Title, movement domain.MovementType) (*domain.JournalEntry, error)

	// PostTitle validates the movement's accounts, builds the entry and persists title and entry atomically.
	PostTitle(ctx context.Context, title domain.Title, movement domain.MovementType) (*domain.JournalEntry, error)
}

// TitleReaderSvc defines read operations for titles
type TitleReaderSvc interface {
	GetTitleByID(ctx context.Context, caps domain.Capabilities, titleID string) (*domain.Title, error)
	ListTitles(ctx context.Context, caps domain.Capabilities, params dto.ListTitlesParams) (*dto.ListTitlesResponse, error)
}

// TitleWriterSvc defines the lifecycle operations of a title
type TitleWriterSvc interface {
	// CreateTitle creates an ACTIVE title and posts its journal entry.
	CreateTitle(ctx context.Context, caps domain.Capabilities, req dto.CreateTitleRequest, userID string) (*domain.Title, error)

	// UpdateTitle edits an ACTIVE title. The journal entry already posted is left untouched.
	UpdateTitle(ctx context.Context, caps domain.Capabilities, titleID string, req dto.UpdateTitleRequest, userID string) (*domain.Title, error)

	// InactivateTitle moves an ACTIVE title to INACTIVE.
	InactivateTitle(ctx context.Context, caps domain.Capabilities, titleID string, userID string) (*domain.Title, error)

	// PayTitle moves an ACTIVE title to PAID.
	PayTitle(ctx context.Context, caps domain.Capabilities, titleID string, userID string) (*domain.Title, error)

	// DeleteTitle removes a title that is not PAID, together with its journal entry.
	DeleteTitle(ctx context.Context, caps domain.Capabilities, titleID string) error
}

// TitleSvcFacade combines all title service interfaces
type TitleSvcFacade interface {
	TitleReaderSvc
	TitleWriterSvc
}
