package repositories

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindJournalEntryByID retrieves a journal entry with its lines.
	FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of journal entries (with lines) using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListJournalEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// LedgerReader defines read operations for journal lines seen per account
type LedgerReader interface {
	// ListLinesByAccountID retrieves a page of journal lines for an account using token-based pagination.
	ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerLine, *string, error)

	// BalanceThroughLine returns the account's debit-minus-credit balance over line and
	// every line listed after it, i.e. the balance right after line was posted.
	BalanceThroughLine(ctx context.Context, accountID string, line domain.LedgerLine) (decimal.Decimal, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	LedgerReader
}
