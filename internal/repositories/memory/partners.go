package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

var partnerSortKeys = map[string]sortKey[domain.Partner]{
	"createdAt": func(p domain.Partner) any { return p.CreatedAt },
	"name":      func(p domain.Partner) any { return p.Name },
}

func (s *Store) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.partners[partnerID]
	if !ok {
		return nil, apperrors.NewNotFoundError("partner", partnerID)
	}
	return &p, nil
}

func (s *Store) ListPartners(ctx context.Context, filter domain.PartnerFilter) ([]domain.Partner, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]domain.Partner, 0, len(s.partners))
	for _, p := range s.partners {
		switch {
		case filter.Name != "" && !containsFold(filter.Name, p.Name),
			filter.Status != nil && p.Status != *filter.Status,
			!containsFold(filter.Search, p.Name, p.Document, p.Address),
			!inDateRange(p.CreatedAt, filter.ListOptions):
			continue
		}
		rows = append(rows, p)
	}
	page, total := paginate(rows, filter.ListOptions, partnerSortKeys)
	return page, total, nil
}

func (s *Store) SavePartner(ctx context.Context, partner domain.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.partners[partner.PartnerID]; exists {
		return fmt.Errorf("%w: partner %s", apperrors.ErrDuplicate, partner.PartnerID)
	}
	s.partners[partner.PartnerID] = partner
	return nil
}

func (s *Store) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.partners[partner.PartnerID]; !ok {
		return apperrors.NewNotFoundError("partner", partner.PartnerID)
	}
	s.partners[partner.PartnerID] = partner
	return nil
}

func (s *Store) DeletePartner(ctx context.Context, partnerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.partners[partnerID]; !ok {
		return apperrors.NewNotFoundError("partner", partnerID)
	}
	for _, t := range s.titles {
		if t.PartnerID != nil && *t.PartnerID == partnerID {
			return fmt.Errorf("%w: partner is referenced by titles", apperrors.ErrConflict)
		}
	}
	delete(s.partners, partnerID)
	return nil
}
