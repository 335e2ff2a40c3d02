package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

var accountSortKeys = map[string]sortKey[domain.Account]{
	"createdAt": func(a domain.Account) any { return a.CreatedAt },
	"code":      func(a domain.Account) any { return a.Code },
	"name":      func(a domain.Account) any { return a.Name },
	"level":     func(a domain.Account) any { return a.Level },
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFoundError("account", accountID)
	}
	return &acc, nil
}

func (s *Store) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := s.accounts[id]; ok {
			out[id] = acc
		}
	}
	return out, nil
}

func (s *Store) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		switch {
		case filter.Name != "" && !containsFold(filter.Name, a.Name),
			filter.Description != "" && !containsFold(filter.Description, a.Description),
			filter.Level != nil && a.Level != *filter.Level,
			filter.AcceptsPosting != nil && a.AcceptsPosting != *filter.AcceptsPosting,
			filter.Status != nil && a.Status != *filter.Status,
			filter.ParentID != nil && (a.ParentAccountID == nil || *a.ParentAccountID != *filter.ParentID),
			!containsFold(filter.Search, a.Code, a.Name, a.Description),
			!inDateRange(a.CreatedAt, filter.ListOptions):
			continue
		}
		rows = append(rows, a)
	}
	page, total := paginate(rows, filter.ListOptions, accountSortKeys)
	return page, total, nil
}

func (s *Store) ListAllAccounts(ctx context.Context, status *domain.Status, acceptsPosting *bool) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if status != nil && a.Status != *status {
			continue
		}
		if acceptsPosting != nil && a.AcceptsPosting != *acceptsPosting {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Store) ListChildCodes(ctx context.Context, parentID *string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var codes []string
	for _, a := range s.accounts {
		if parentID == nil {
			if a.ParentAccountID == nil {
				codes = append(codes, a.Code)
			}
			continue
		}
		if a.ParentAccountID != nil && *a.ParentAccountID == *parentID {
			codes = append(codes, a.Code)
		}
	}
	return codes, nil
}

func (s *Store) AccountUsage(ctx context.Context, accountID string) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	children, lines := 0, 0
	for _, a := range s.accounts {
		if a.ParentAccountID != nil && *a.ParentAccountID == accountID {
			children++
		}
	}
	for _, e := range s.entries {
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				lines++
			}
		}
	}
	return children, lines, nil
}

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[account.AccountID]; exists {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.AccountID)
	}
	for _, a := range s.accounts {
		if strings.EqualFold(a.Code, account.Code) {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
		}
	}
	if account.ParentAccountID != nil {
		if _, ok := s.accounts[*account.ParentAccountID]; !ok {
			return apperrors.NewNotFoundError("account", *account.ParentAccountID)
		}
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.AccountID]; !ok {
		return apperrors.NewNotFoundError("account", account.AccountID)
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[accountID]; !ok {
		return apperrors.NewNotFoundError("account", accountID)
	}
	for _, a := range s.accounts {
		if a.ParentAccountID != nil && *a.ParentAccountID == accountID {
			return fmt.Errorf("%w: account has child accounts", apperrors.ErrConflict)
		}
	}
	for _, m := range s.movementTypes {
		if m.DebitAccountID == accountID || m.CreditAccountID == accountID {
			return fmt.Errorf("%w: account is used by movement type %s", apperrors.ErrConflict, m.Name)
		}
	}
	for _, e := range s.entries {
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				return fmt.Errorf("%w: account has journal lines", apperrors.ErrConflict)
			}
		}
	}
	delete(s.accounts, accountID)
	return nil
}
