package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// journalService implements read access to posted journal entries. Entries are only ever
// written by the posting engine.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo, accountRepo: accountRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) GetJournalEntryByID(ctx context.Context, caps domain.Capabilities, journalEntryID string) (*domain.JournalEntry, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceJournalEntry); err != nil {
		return nil, err
	}
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, journalEntryID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find journal entry", slog.String("journal_entry_id", journalEntryID))
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, caps domain.Capabilities, params dto.CursorParams) (*dto.ListJournalEntriesResponse, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceJournalEntry); err != nil {
		return nil, err
	}
	entries, next, err := s.journalRepo.ListJournalEntries(ctx, params.Limit, params.Token())
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return &dto.ListJournalEntriesResponse{
		Entries:   dto.ToListJournalEntryResponse(entries),
		NextToken: next,
	}, nil
}

func (s *journalService) ListAccountLedger(ctx context.Context, caps domain.Capabilities, accountID string, params dto.CursorParams) (*dto.ListLedgerResponse, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceJournalEntry); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		s.logUnexpected(ctx, err, "Failed to find ledger account", slog.String("account_id", accountID))
		return nil, err
	}
	lines, next, err := s.journalRepo.ListLinesByAccountID(ctx, accountID, params.Limit, params.Token())
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to list ledger lines", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list ledger lines: %w", err)
	}

	closing := decimal.Zero
	if len(lines) > 0 {
		closing, err = s.journalRepo.BalanceThroughLine(ctx, accountID, lines[0])
		if err != nil {
			s.logUnexpected(ctx, err, "Failed to compute ledger balance", slog.String("account_id", accountID))
			return nil, fmt.Errorf("failed to compute ledger balance: %w", err)
		}
	}
	opening, err := applyRunningBalances(lines, closing)
	if err != nil {
		s.LogError(ctx, err, "Ledger holds a line of unknown type", slog.String("account_id", accountID))
		return nil, err
	}

	return &dto.ListLedgerResponse{
		AccountID:      accountID,
		OpeningBalance: opening,
		ClosingBalance: closing,
		Lines:          dto.ToLedgerLineResponses(lines),
		NextToken:      next,
	}, nil
}

// applyRunningBalances walks a newest-first page down from the balance after its first
// line and returns the balance before its last one.
func applyRunningBalances(lines []domain.LedgerLine, closing decimal.Decimal) (decimal.Decimal, error) {
	balance := closing
	for i := range lines {
		lines[i].RunningBalance = balance
		signed, err := accounting.SignedAmount(lines[i].JournalLine)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Sub(signed)
	}
	return balance, nil
}
