package services

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/dto"
)

// PartnerSvcFacade defines the operations on title counterparties
type PartnerSvcFacade interface {
	CreatePartner(ctx context.Context, caps domain.Capabilities, req dto.CreatePartnerRequest, userID string) (*domain.Partner, error)
	GetPartnerByID(ctx context.Context, caps domain.Capabilities, partnerID string) (*domain.Partner, error)
	ListPartners(ctx context.Context, caps domain.Capabilities, params dto.ListPartnersParams) (*dto.ListPartnersResponse, error)
	UpdatePartner(ctx context.Context, caps domain.Capabilities, partnerID string, req dto.UpdatePartnerRequest, userID string) (*domain.Partner, error)
	InactivatePartner(ctx context.Context, caps domain.Capabilities, partnerID string, userID string) (*domain.Partner, error)
	// DeletePartner removes a partner no title references.
	DeletePartner(ctx context.Context, caps domain.Capabilities, partnerID string) error
}
