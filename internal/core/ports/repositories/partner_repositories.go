package repositories

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// PartnerReader defines read operations for partners
type PartnerReader interface {
	FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)
	ListPartners(ctx context.Context, filter domain.PartnerFilter) ([]domain.Partner, int, error)
}

// PartnerWriter defines write operations for partners
type PartnerWriter interface {
	SavePartner(ctx context.Context, partner domain.Partner) error
	UpdatePartner(ctx context.Context, partner domain.Partner) error
	// DeletePartner removes a partner. It returns apperrors.ErrConflict when titles still reference it.
	DeletePartner(ctx context.Context, partnerID string) error
}

// PartnerRepositoryFacade combines all partner repository interfaces
type PartnerRepositoryFacade interface {
	PartnerReader
	PartnerWriter
}
