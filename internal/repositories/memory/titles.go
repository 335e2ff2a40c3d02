package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

var titleSortKeys = map[string]sortKey[domain.Title]{
	"createdAt": func(t domain.Title) any { return t.CreatedAt },
	"date":      func(t domain.Title) any { return t.Date },
	"code":      func(t domain.Title) any { return t.Code },
	"value":     func(t domain.Title) any { return t.Value },
}

// hydrateTitle attaches movement type, partner and journal entry. Callers hold the lock.
func (s *Store) hydrateTitle(t domain.Title) domain.Title {
	if m, ok := s.movementTypes[t.MovementTypeID]; ok {
		m = s.hydrateMovementType(m)
		t.MovementType = &m
	}
	if t.PartnerID != nil {
		if p, ok := s.partners[*t.PartnerID]; ok {
			t.Partner = &p
		}
	}
	if entryID, ok := s.entryByTitle[t.TitleID]; ok {
		e := s.hydrateEntry(s.entries[entryID])
		t.Journal = &e
	}
	return t
}

func (s *Store) FindTitleByID(ctx context.Context, titleID string) (*domain.Title, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.titles[titleID]
	if !ok {
		return nil, apperrors.NewNotFoundError("title", titleID)
	}
	t = s.hydrateTitle(t)
	return &t, nil
}

func (s *Store) ListTitles(ctx context.Context, filter domain.TitleFilter) ([]domain.Title, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]domain.Title, 0, len(s.titles))
	for _, t := range s.titles {
		switch {
		case filter.Status != nil && t.Status != *filter.Status,
			filter.MovementTypeID != "" && t.MovementTypeID != filter.MovementTypeID,
			filter.PartnerID != "" && (t.PartnerID == nil || *t.PartnerID != filter.PartnerID),
			!containsFold(filter.Search, t.Code, t.Description),
			!inDateRange(t.Date, filter.ListOptions):
			continue
		}
		rows = append(rows, t)
	}
	page, total := paginate(rows, filter.ListOptions, titleSortKeys)
	for i := range page {
		page[i] = s.hydrateTitle(page[i])
	}
	return page, total, nil
}

// SaveTitleWithJournal writes the title, then the entry, then each line, checking every
// reference as it goes. A failure at any step undoes the steps already applied.
func (s *Store) SaveTitleWithJournal(ctx context.Context, title domain.Title, entry domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.insertTitle(title); err != nil {
		return err
	}
	if err := s.insertEntry(title, entry); err != nil {
		delete(s.titles, title.TitleID)
		return err
	}
	return nil
}

func (s *Store) insertTitle(title domain.Title) error {
	if _, exists := s.titles[title.TitleID]; exists {
		return fmt.Errorf("%w: title %s", apperrors.ErrDuplicate, title.TitleID)
	}
	for _, t := range s.titles {
		if strings.EqualFold(t.Code, title.Code) {
			return fmt.Errorf("%w: title code already exists", apperrors.ErrDuplicate)
		}
	}
	if _, ok := s.movementTypes[title.MovementTypeID]; !ok {
		return apperrors.NewNotFoundError("movement type", title.MovementTypeID)
	}
	if title.PartnerID != nil {
		if _, ok := s.partners[*title.PartnerID]; !ok {
			return apperrors.NewNotFoundError("partner", *title.PartnerID)
		}
	}
	title.MovementType, title.Partner, title.Journal = nil, nil, nil
	s.titles[title.TitleID] = title
	return nil
}

func (s *Store) insertEntry(title domain.Title, entry domain.JournalEntry) error {
	if entry.TitleID != title.TitleID {
		return fmt.Errorf("%w: journal entry belongs to title %s", apperrors.ErrValidation, entry.TitleID)
	}
	if _, exists := s.entryByTitle[title.TitleID]; exists {
		return fmt.Errorf("%w: title already has a journal entry", apperrors.ErrDuplicate)
	}
	if !entry.IsBalanced() {
		return fmt.Errorf("%w: journal entry is not balanced", apperrors.ErrValidation)
	}

	stored := entry
	stored.Lines = make([]domain.JournalLine, 0, len(entry.Lines))
	for _, l := range entry.Lines {
		if _, ok := s.accounts[l.AccountID]; !ok {
			return apperrors.NewNotFoundError("account", l.AccountID)
		}
		l.JournalEntryID = entry.JournalEntryID
		l.Account = nil
		stored.Lines = append(stored.Lines, l)
	}
	s.entries[entry.JournalEntryID] = stored
	s.entryByTitle[title.TitleID] = entry.JournalEntryID
	return nil
}

func (s *Store) UpdateTitle(ctx context.Context, title domain.Title) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.titles[title.TitleID]
	if !ok {
		return apperrors.NewNotFoundError("title", title.TitleID)
	}
	if current.Status != domain.TitleActive {
		return fmt.Errorf("%w: title is %s", apperrors.ErrConflict, current.Status)
	}
	for id, t := range s.titles {
		if id != title.TitleID && strings.EqualFold(t.Code, title.Code) {
			return fmt.Errorf("%w: title code already exists", apperrors.ErrDuplicate)
		}
	}
	if _, ok := s.movementTypes[title.MovementTypeID]; !ok {
		return apperrors.NewNotFoundError("movement type", title.MovementTypeID)
	}
	if title.PartnerID != nil {
		if _, ok := s.partners[*title.PartnerID]; !ok {
			return apperrors.NewNotFoundError("partner", *title.PartnerID)
		}
	}

	current.Code = title.Code
	current.Description = title.Description
	current.Date = title.Date
	current.Value = title.Value
	current.MovementTypeID = title.MovementTypeID
	current.PartnerID = title.PartnerID
	current.LastUpdatedAt = title.LastUpdatedAt
	current.LastUpdatedBy = title.LastUpdatedBy
	s.titles[title.TitleID] = current
	return nil
}

func (s *Store) TransitionTitleStatus(ctx context.Context, titleID string, from, to domain.TitleStatus, paidAt *time.Time, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.titles[titleID]
	if !ok {
		return apperrors.NewNotFoundError("title", titleID)
	}
	if t.Status != from {
		return fmt.Errorf("%w: title is %s, expected %s", apperrors.ErrConflict, t.Status, from)
	}
	t.Status = to
	if paidAt != nil {
		t.PaidAt = paidAt
	}
	t.LastUpdatedAt = at
	t.LastUpdatedBy = userID
	s.titles[titleID] = t
	return nil
}

func (s *Store) DeleteTitleWithJournal(ctx context.Context, titleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.titles[titleID]; !ok {
		return apperrors.NewNotFoundError("title", titleID)
	}
	if entryID, ok := s.entryByTitle[titleID]; ok {
		delete(s.entries, entryID)
		delete(s.entryByTitle, titleID)
	}
	delete(s.titles, titleID)
	return nil
}
