package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// postingEngine implements the PostingEngine interface
type postingEngine struct {
	BaseService
	accountRepo portsrepo.AccountReader
	titleRepo   portsrepo.TitleWriter
}

// NewPostingEngine creates the engine that writes a title and its journal entry together.
func NewPostingEngine(accountRepo portsrepo.AccountReader, titleRepo portsrepo.TitleWriter) portssvc.PostingEngine {
	return &postingEngine{accountRepo: accountRepo, titleRepo: titleRepo}
}

var _ portssvc.PostingEngine = (*postingEngine)(nil)

// BuildEntry creates one DEBIT line on the movement's debit account and one CREDIT line on
// its credit account, both for the title value.
func (e *postingEngine) BuildEntry(title domain.Title, movement domain.MovementType) (*domain.JournalEntry, error) {
	var errs error
	if !title.Value.IsPositive() {
		errs = multierr.Append(errs, apperrors.NewFieldError("value", "must be greater than zero"))
	}
	if movement.DebitAccountID == "" {
		errs = multierr.Append(errs, apperrors.NewFieldError("debitAccountId", "is required"))
	}
	if movement.CreditAccountID == "" {
		errs = multierr.Append(errs, apperrors.NewFieldError("creditAccountId", "is required"))
	}
	if movement.DebitAccountID != "" && !movement.HasDistinctAccounts() {
		errs = multierr.Append(errs, apperrors.NewFieldError("movementId", "debit and credit accounts must differ"))
	}
	if errs != nil {
		return nil, apperrors.Validation(errs)
	}

	entryID := uuid.NewString()
	entry := &domain.JournalEntry{
		JournalEntryID: entryID,
		TitleID:        title.TitleID,
		EntryDate:      title.Date,
		OriginType:     domain.OriginTitle,
		Description:    entryDescription(title),
		CreatedAt:      title.CreatedAt,
		CreatedBy:      title.CreatedBy,
		Lines: []domain.JournalLine{
			{
				JournalLineID:  uuid.NewString(),
				JournalEntryID: entryID,
				AccountID:      movement.DebitAccountID,
				Type:           domain.Debit,
				Amount:         title.Value,
				CreatedAt:      title.CreatedAt,
			},
			{
				JournalLineID:  uuid.NewString(),
				JournalEntryID: entryID,
				AccountID:      movement.CreditAccountID,
				Type:           domain.Credit,
				Amount:         title.Value,
				CreatedAt:      title.CreatedAt,
			},
		},
	}

	if err := accounting.ValidateEntryBalance(entry.Lines); err != nil {
		return nil, apperrors.Validation(apperrors.NewFieldError("value", err.Error()))
	}
	return entry, nil
}

// PostTitle re-checks the movement's accounts against storage and persists the title with
// its entry as one unit.
func (e *postingEngine) PostTitle(ctx context.Context, title domain.Title, movement domain.MovementType) (*domain.JournalEntry, error) {
	entry, err := e.BuildEntry(title, movement)
	if err != nil {
		return nil, err
	}

	accounts, err := e.accountRepo.FindAccountsByIDs(ctx, []string{movement.DebitAccountID, movement.CreditAccountID})
	if err != nil {
		e.LogError(ctx, err, "Failed to load movement accounts",
			slog.String("movement_type_id", movement.MovementTypeID))
		return nil, fmt.Errorf("failed to load movement accounts: %w", err)
	}

	var errs error
	for i := range entry.Lines {
		line := &entry.Lines[i]
		acc, ok := accounts[line.AccountID]
		if !ok {
			return nil, apperrors.NewNotFoundError("account", line.AccountID)
		}
		if !acc.IsPostable() {
			errs = multierr.Append(errs, apperrors.NewFieldError(fieldForLine(line.Type),
				fmt.Sprintf("account %s does not accept postings", acc.Code)))
			continue
		}
		line.Account = &acc
	}
	if errs != nil {
		return nil, apperrors.Validation(errs)
	}

	if err := e.titleRepo.SaveTitleWithJournal(ctx, title, *entry); err != nil {
		e.logUnexpected(ctx, err, "Failed to persist title with journal entry",
			slog.String("title_id", title.TitleID))
		return nil, err
	}

	e.LogInfo(ctx, "Title posted",
		slog.String("title_id", title.TitleID),
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("amount", title.Value.String()))
	return entry, nil
}

func entryDescription(title domain.Title) string {
	if title.Description != "" {
		return title.Description
	}
	return "Title " + title.Code
}

func fieldForLine(t domain.LineType) string {
	if t == domain.Debit {
		return "debitAccountId"
	}
	return "creditAccountId"
}
