package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/utils/accounting"
	"github.com/SscSPs/contabil_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// hydrateEntry attaches the account of every line. Callers hold the lock.
func (s *Store) hydrateEntry(e domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.JournalLine, len(e.Lines))
	for i, l := range e.Lines {
		if acc, ok := s.accounts[l.AccountID]; ok {
			l.Account = &acc
		}
		lines[i] = l
	}
	e.Lines = lines
	return e
}

func (s *Store) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[journalEntryID]
	if !ok {
		return nil, apperrors.NewNotFoundError("journal entry", journalEntryID)
	}
	e = s.hydrateEntry(e)
	return &e, nil
}

// pageByCursor orders rows newest first and returns the rows after token plus the token
// for the following page.
func pageByCursor[T any](rows []T, cursorOf func(T) pagination.Cursor, limit int, token *string) ([]T, *string, error) {
	sort.Slice(rows, func(i, j int) bool {
		return cursorOf(rows[i]).Before(cursorOf(rows[j]))
	})

	start := 0
	if token != nil {
		c, err := pagination.DecodeCursor(*token)
		if err != nil {
			return nil, nil, apperrors.Validation(apperrors.NewFieldError("nextToken", err.Error()))
		}
		start = len(rows)
		for i, r := range rows {
			if c.Before(cursorOf(r)) {
				start = i
				break
			}
		}
	}

	end := start + limit
	if end >= len(rows) {
		return rows[start:], nil, nil
	}
	next := pagination.EncodeCursor(cursorOf(rows[end-1]))
	return rows[start:end], &next, nil
}

func (s *Store) ListJournalEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]domain.JournalEntry, 0, len(s.entries))
	for _, e := range s.entries {
		rows = append(rows, s.hydrateEntry(e))
	}
	return pageByCursor(rows, func(e domain.JournalEntry) pagination.Cursor {
		return pagination.Cursor{Date: e.EntryDate, CreatedAt: e.CreatedAt, ID: e.JournalEntryID}
	}, limit, nextToken)
}

func (s *Store) ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerLine, *string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var rows []domain.LedgerLine
	for _, e := range s.entries {
		for _, l := range e.Lines {
			if l.AccountID != accountID {
				continue
			}
			rows = append(rows, domain.LedgerLine{
				JournalLine: l,
				EntryDate:   e.EntryDate,
				TitleID:     e.TitleID,
				Description: e.Description,
			})
		}
	}
	return pageByCursor(rows, func(l domain.LedgerLine) pagination.Cursor {
		return pagination.Cursor{Date: l.EntryDate, CreatedAt: l.CreatedAt, ID: l.JournalLineID}
	}, limit, nextToken)
}

func (s *Store) BalanceThroughLine(ctx context.Context, accountID string, line domain.LedgerLine) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	through := pagination.Cursor{Date: line.EntryDate, CreatedAt: line.CreatedAt, ID: line.JournalLineID}
	balance := decimal.Zero
	for _, e := range s.entries {
		for _, l := range e.Lines {
			if l.AccountID != accountID {
				continue
			}
			at := pagination.Cursor{Date: e.EntryDate, CreatedAt: l.CreatedAt, ID: l.JournalLineID}
			if l.JournalLineID != line.JournalLineID && !through.Before(at) {
				continue
			}
			signed, err := accounting.SignedAmount(l)
			if err != nil {
				return decimal.Zero, err
			}
			balance = balance.Add(signed)
		}
	}
	return balance, nil
}

// GetAccountTotals sums the lines of every entry dated on or before asOf.
func (s *Store) GetAccountTotals(ctx context.Context, asOf time.Time) (map[string]domain.AccountTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var lines []domain.JournalLine
	for _, e := range s.entries {
		if e.EntryDate.After(asOf) {
			continue
		}
		lines = append(lines, e.Lines...)
	}
	return accounting.SumByAccount(lines), nil
}
