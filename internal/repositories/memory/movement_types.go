package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

var movementTypeSortKeys = map[string]sortKey[domain.MovementType]{
	"createdAt": func(m domain.MovementType) any { return m.CreatedAt },
	"name":      func(m domain.MovementType) any { return m.Name },
}

// hydrateMovementType attaches both accounts. Callers hold the lock.
func (s *Store) hydrateMovementType(m domain.MovementType) domain.MovementType {
	if acc, ok := s.accounts[m.DebitAccountID]; ok {
		m.DebitAccount = &acc
	}
	if acc, ok := s.accounts[m.CreditAccountID]; ok {
		m.CreditAccount = &acc
	}
	return m
}

func (s *Store) FindMovementTypeByID(ctx context.Context, movementTypeID string) (*domain.MovementType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movementTypes[movementTypeID]
	if !ok {
		return nil, apperrors.NewNotFoundError("movement type", movementTypeID)
	}
	m = s.hydrateMovementType(m)
	return &m, nil
}

func (s *Store) ListMovementTypes(ctx context.Context, filter domain.MovementTypeFilter) ([]domain.MovementType, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]domain.MovementType, 0, len(s.movementTypes))
	for _, m := range s.movementTypes {
		switch {
		case filter.Name != "" && !containsFold(filter.Name, m.Name),
			filter.Status != nil && m.Status != *filter.Status,
			filter.DebitAccountID != "" && m.DebitAccountID != filter.DebitAccountID,
			filter.CreditAccountID != "" && m.CreditAccountID != filter.CreditAccountID,
			!containsFold(filter.Search, m.Name, m.Description),
			!inDateRange(m.CreatedAt, filter.ListOptions):
			continue
		}
		rows = append(rows, s.hydrateMovementType(m))
	}
	page, total := paginate(rows, filter.ListOptions, movementTypeSortKeys)
	return page, total, nil
}

func (s *Store) CountTitlesByMovementType(ctx context.Context, movementTypeID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, t := range s.titles {
		if t.MovementTypeID == movementTypeID {
			n++
		}
	}
	return n, nil
}

// checkMovementType mirrors the table constraints. Callers hold the lock.
func (s *Store) checkMovementType(m domain.MovementType) error {
	if m.DebitAccountID == m.CreditAccountID {
		return fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
	}
	for _, id := range []string{m.DebitAccountID, m.CreditAccountID} {
		if _, ok := s.accounts[id]; !ok {
			return apperrors.NewNotFoundError("account", id)
		}
	}
	return nil
}

func (s *Store) SaveMovementType(ctx context.Context, m domain.MovementType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.movementTypes[m.MovementTypeID]; exists {
		return fmt.Errorf("%w: movement type %s", apperrors.ErrDuplicate, m.MovementTypeID)
	}
	if err := s.checkMovementType(m); err != nil {
		return err
	}
	m.DebitAccount, m.CreditAccount = nil, nil
	s.movementTypes[m.MovementTypeID] = m
	return nil
}

func (s *Store) UpdateMovementType(ctx context.Context, m domain.MovementType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movementTypes[m.MovementTypeID]; !ok {
		return apperrors.NewNotFoundError("movement type", m.MovementTypeID)
	}
	if err := s.checkMovementType(m); err != nil {
		return err
	}
	m.DebitAccount, m.CreditAccount = nil, nil
	s.movementTypes[m.MovementTypeID] = m
	return nil
}

func (s *Store) DeleteMovementType(ctx context.Context, movementTypeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.movementTypes[movementTypeID]; !ok {
		return apperrors.NewNotFoundError("movement type", movementTypeID)
	}
	for _, t := range s.titles {
		if t.MovementTypeID == movementTypeID {
			return fmt.Errorf("%w: movement type is used by titles", apperrors.ErrConflict)
		}
	}
	delete(s.movementTypes, movementTypeID)
	return nil
}
