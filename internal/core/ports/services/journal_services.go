package services

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetJournalEntryByID retrieves a journal entry with its lines.
	GetJournalEntryByID(ctx context.Context, caps domain.Capabilities, journalEntryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a token-paginated list of journal entries.
	ListJournalEntries(ctx context.Context, caps domain.Capabilities, params dto.CursorParams) (*dto.ListJournalEntriesResponse, error)
}

// LedgerReaderSvc defines read operations for per-account journal lines
type LedgerReaderSvc interface {
	// ListAccountLedger retrieves the journal lines posted to an account.
	ListAccountLedger(ctx context.Context, caps domain.Capabilities, accountID string, params dto.CursorParams) (*dto.ListLedgerResponse, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	LedgerReaderSvc
}
