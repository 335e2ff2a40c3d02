package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/utils/pagination"
	"github.com/google/uuid"
)

type partnerService struct {
	BaseService
	partnerRepo portsrepo.PartnerRepositoryFacade
}

// NewPartnerService creates a new partner service.
func NewPartnerService(partnerRepo portsrepo.PartnerRepositoryFacade) portssvc.PartnerSvcFacade {
	return &partnerService{partnerRepo: partnerRepo}
}

var _ portssvc.PartnerSvcFacade = (*partnerService)(nil)

func (s *partnerService) CreatePartner(ctx context.Context, caps domain.Capabilities, req dto.CreatePartnerRequest, userID string) (*domain.Partner, error) {
	if err := s.Authorize(ctx, caps, domain.ActionCreate, domain.ResourcePartner); err != nil {
		return nil, err
	}
	now := time.Now()
	status := domain.StatusActive
	if req.Status != "" {
		status = domain.Status(req.Status)
	}
	p := domain.Partner{
		PartnerID: uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Address:   req.Address,
		Document:  strings.TrimSpace(req.Document),
		Status:    status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.partnerRepo.SavePartner(ctx, p); err != nil {
		s.logUnexpected(ctx, err, "Failed to save partner")
		return nil, err
	}
	s.LogInfo(ctx, "Partner created", slog.String("partner_id", p.PartnerID))
	return &p, nil
}

func (s *partnerService) GetPartnerByID(ctx context.Context, caps domain.Capabilities, partnerID string) (*domain.Partner, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourcePartner); err != nil {
		return nil, err
	}
	p, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find partner", slog.String("partner_id", partnerID))
		return nil, err
	}
	return p, nil
}

func (s *partnerService) ListPartners(ctx context.Context, caps domain.Capabilities, params dto.ListPartnersParams) (*dto.ListPartnersResponse, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourcePartner); err != nil {
		return nil, err
	}
	filter := params.ToFilter()
	items, total, err := s.partnerRepo.ListPartners(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list partners")
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return &dto.ListPartnersResponse{
		Data:       dto.ToListPartnerResponse(items),
		Pagination: pagination.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *partnerService) UpdatePartner(ctx context.Context, caps domain.Capabilities, partnerID string, req dto.UpdatePartnerRequest, userID string) (*domain.Partner, error) {
	if err := s.Authorize(ctx, caps, domain.ActionUpdate, domain.ResourcePartner); err != nil {
		return nil, err
	}
	p, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Document != nil {
		p.Document = strings.TrimSpace(*req.Document)
	}
	if p.Name == "" {
		return nil, apperrors.Validation(apperrors.NewFieldError("name", "must not be empty"))
	}
	return s.save(ctx, p, userID)
}

func (s *partnerService) InactivatePartner(ctx context.Context, caps domain.Capabilities, partnerID string, userID string) (*domain.Partner, error) {
	if err := s.Authorize(ctx, caps, domain.ActionUpdate, domain.ResourcePartner); err != nil {
		return nil, err
	}
	p, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.StatusInactive {
		return nil, fmt.Errorf("%w: partner is already inactive", apperrors.ErrConflict)
	}
	p.Status = domain.StatusInactive
	return s.save(ctx, p, userID)
}

func (s *partnerService) DeletePartner(ctx context.Context, caps domain.Capabilities, partnerID string) error {
	if err := s.Authorize(ctx, caps, domain.ActionDelete, domain.ResourcePartner); err != nil {
		return err
	}
	if err := s.partnerRepo.DeletePartner(ctx, partnerID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete partner", slog.String("partner_id", partnerID))
		return err
	}
	return nil
}

func (s *partnerService) save(ctx context.Context, p *domain.Partner, userID string) (*domain.Partner, error) {
	p.LastUpdatedAt = time.Now()
	p.LastUpdatedBy = userID
	if err := s.partnerRepo.UpdatePartner(ctx, *p); err != nil {
		s.logUnexpected(ctx, err, "Failed to update partner", slog.String("partner_id", p.PartnerID))
		return nil, err
	}
	return p, nil
}
