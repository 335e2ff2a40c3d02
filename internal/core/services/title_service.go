package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/utils"
	"github.com/SscSPs/contabil_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// titleService implements the TitleSvcFacade interface. It is the title lifecycle
// controller: every operation checks the caller's capabilities, then the state machine.
type titleService struct {
	BaseService
	titleRepo    portsrepo.TitleRepositoryFacade
	movementRepo portsrepo.MovementTypeReader
	partnerRepo  portsrepo.PartnerReader
	posting      portssvc.PostingEngine
	generateCode func(date time.Time) (string, error)
	now          func() time.Time
}

// TitleServiceOption is a functional option for configuring the title service
type TitleServiceOption func(*titleService)

// WithTitleCodeGenerator replaces the generator used when a title is created without a code.
func WithTitleCodeGenerator(fn func(date time.Time) (string, error)) TitleServiceOption {
	return func(s *titleService) {
		s.generateCode = fn
	}
}

// WithTitleClock replaces time.Now.
func WithTitleClock(now func() time.Time) TitleServiceOption {
	return func(s *titleService) {
		s.now = now
	}
}

// NewTitleService creates a new title service with the provided options
func NewTitleService(
	titleRepo portsrepo.TitleRepositoryFacade,
	movementRepo portsrepo.MovementTypeReader,
	partnerRepo portsrepo.PartnerReader,
	posting portssvc.PostingEngine,
	options ...TitleServiceOption,
) portssvc.TitleSvcFacade {
	svc := &titleService{
		titleRepo:    titleRepo,
		movementRepo: movementRepo,
		partnerRepo:  partnerRepo,
		posting:      posting,
		generateCode: utils.GenerateTitleCode,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TitleSvcFacade = (*titleService)(nil)

// validateCreateTitle checks the request before any lookup runs.
func validateCreateTitle(req dto.CreateTitleRequest) error {
	var errs error
	if !req.Value.IsPositive() {
		errs = multierr.Append(errs, apperrors.NewFieldError("value", "must be greater than zero"))
	}
	if req.MovementID == "" {
		errs = multierr.Append(errs, apperrors.NewFieldError("movementId", "is required"))
	}
	if req.Status != "" && domain.TitleStatus(req.Status) != domain.TitleActive {
		errs = multierr.Append(errs, apperrors.NewFieldError("status", "titles are always created ACTIVE"))
	}
	return apperrors.Validation(errs)
}

func (s *titleService) CreateTitle(ctx context.Context, caps domain.Capabilities, req dto.CreateTitleRequest, userID string) (*domain.Title, error) {
	if err := s.Authorize(ctx, caps, domain.ActionCreate, domain.ResourceTitle); err != nil {
		return nil, err
	}
	if err := validateCreateTitle(req); err != nil {
		return nil, err
	}

	movement, err := s.loadMovement(ctx, req.MovementID)
	if err != nil {
		return nil, err
	}
	partner, err := s.loadPartner(ctx, req.PartnerID)
	if err != nil {
		return nil, err
	}
	var partnerID *string
	if partner != nil {
		partnerID = &partner.PartnerID
	}

	now := s.now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	code := req.Code
	if code == "" {
		if code, err = s.generateCode(date); err != nil {
			s.LogError(ctx, err, "Failed to generate title code")
			return nil, fmt.Errorf("failed to generate title code: %w", err)
		}
	}

	title := domain.Title{
		TitleID:        uuid.NewString(),
		Code:           code,
		Description:    req.Description,
		Date:           date,
		Value:          req.Value,
		Status:         domain.TitleActive,
		MovementTypeID: movement.MovementTypeID,
		PartnerID:      partnerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	entry, err := s.posting.PostTitle(ctx, title, *movement)
	if err != nil {
		return nil, err
	}

	title.MovementType = movement
	title.Partner = partner
	title.Journal = entry

	s.LogInfo(ctx, "Title created", slog.String("title_id", title.TitleID), slog.String("code", title.Code))
	return &title, nil
}

func (s *titleService) GetTitleByID(ctx context.Context, caps domain.Capabilities, titleID string) (*domain.Title, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceTitle); err != nil {
		return nil, err
	}
	title, err := s.titleRepo.FindTitleByID(ctx, titleID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find title", slog.String("title_id", titleID))
		return nil, err
	}
	return title, nil
}

func (s *titleService) ListTitles(ctx context.Context, caps domain.Capabilities, params dto.ListTitlesParams) (*dto.ListTitlesResponse, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceTitle); err != nil {
		return nil, err
	}
	filter := params.ToFilter()
	titles, total, err := s.titleRepo.ListTitles(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list titles")
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}
	return &dto.ListTitlesResponse{
		Data:       dto.ToListTitleResponse(titles),
		Pagination: pagination.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *titleService) UpdateTitle(ctx context.Context, caps domain.Capabilities, titleID string, req dto.UpdateTitleRequest, userID string) (*domain.Title, error) {
	if err := s.Authorize(ctx, caps, domain.ActionUpdate, domain.ResourceTitle); err != nil {
		return nil, err
	}
	title, err := s.guardTransition(ctx, titleID, domain.TransitionUpdate)
	if err != nil {
		return nil, err
	}

	var errs error
	if req.Code != nil {
		if *req.Code == "" {
			errs = multierr.Append(errs, apperrors.NewFieldError("code", "must not be empty"))
		}
		title.Code = *req.Code
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	if req.Date != nil {
		title.Date = *req.Date
	}
	repostNeeded := false
	if req.Value != nil {
		if !req.Value.IsPositive() {
			errs = multierr.Append(errs, apperrors.NewFieldError("value", "must be greater than zero"))
		}
		repostNeeded = repostNeeded || !req.Value.Equal(title.Value)
		title.Value = *req.Value
	}
	if errs != nil {
		return nil, apperrors.Validation(errs)
	}
	if req.MovementID != nil && *req.MovementID != title.MovementTypeID {
		movement, err := s.loadMovement(ctx, *req.MovementID)
		if err != nil {
			return nil, err
		}
		title.MovementTypeID = movement.MovementTypeID
		repostNeeded = true
	}
	if req.PartnerID != nil {
		if *req.PartnerID == "" {
			title.PartnerID = nil
		} else {
			if _, err := s.loadPartner(ctx, req.PartnerID); err != nil {
				return nil, err
			}
			title.PartnerID = req.PartnerID
		}
	}

	title.LastUpdatedAt = s.now()
	title.LastUpdatedBy = userID

	if err := s.titleRepo.UpdateTitle(ctx, *title); err != nil {
		s.logUnexpected(ctx, err, "Failed to update title", slog.String("title_id", titleID))
		return nil, err
	}
	if repostNeeded {
		s.LogWarn(ctx, "Title value or movement changed after posting; journal entry left unchanged",
			slog.String("title_id", titleID))
	}

	return s.titleRepo.FindTitleByID(ctx, titleID)
}

func (s *titleService) InactivateTitle(ctx context.Context, caps domain.Capabilities, titleID string, userID string) (*domain.Title, error) {
	return s.transition(ctx, caps, titleID, domain.TransitionInactivate, userID)
}

func (s *titleService) PayTitle(ctx context.Context, caps domain.Capabilities, titleID string, userID string) (*domain.Title, error) {
	return s.transition(ctx, caps, titleID, domain.TransitionPay, userID)
}

func (s *titleService) DeleteTitle(ctx context.Context, caps domain.Capabilities, titleID string) error {
	if err := s.Authorize(ctx, caps, domain.ActionDelete, domain.ResourceTitle); err != nil {
		return err
	}
	if _, err := s.guardTransition(ctx, titleID, domain.TransitionRemove); err != nil {
		return err
	}
	if err := s.titleRepo.DeleteTitleWithJournal(ctx, titleID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete title", slog.String("title_id", titleID))
		return err
	}
	s.LogInfo(ctx, "Title deleted with its journal entry", slog.String("title_id", titleID))
	return nil
}

// transition runs a status change that leaves ACTIVE.
func (s *titleService) transition(ctx context.Context, caps domain.Capabilities, titleID string, t domain.TitleTransition, userID string) (*domain.Title, error) {
	if err := s.Authorize(ctx, caps, domain.ActionUpdate, domain.ResourceTitle); err != nil {
		return nil, err
	}
	title, err := s.guardTransition(ctx, titleID, t)
	if err != nil {
		return nil, err
	}

	now := s.now()
	target := title.Status.Target(t)
	var paidAt *time.Time
	if target == domain.TitlePaid {
		paidAt = &now
	}
	if err := s.titleRepo.TransitionTitleStatus(ctx, titleID, title.Status, target, paidAt, userID, now); err != nil {
		s.logUnexpected(ctx, err, "Failed to transition title", slog.String("title_id", titleID))
		return nil, err
	}

	s.LogInfo(ctx, "Title status changed",
		slog.String("title_id", titleID),
		slog.String("from", string(title.Status)),
		slog.String("to", string(target)))
	return s.titleRepo.FindTitleByID(ctx, titleID)
}

// guardTransition loads the title and rejects t when its current state forbids it.
func (s *titleService) guardTransition(ctx context.Context, titleID string, t domain.TitleTransition) (*domain.Title, error) {
	title, err := s.titleRepo.FindTitleByID(ctx, titleID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find title", slog.String("title_id", titleID))
		return nil, err
	}
	if !title.Status.Allows(t) {
		return nil, fmt.Errorf("%w: cannot %s title %s in status %s", apperrors.ErrConflict, t, title.Code, title.Status)
	}
	return title, nil
}

func (s *titleService) loadMovement(ctx context.Context, movementTypeID string) (*domain.MovementType, error) {
	movement, err := s.movementRepo.FindMovementTypeByID(ctx, movementTypeID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find movement type", slog.String("movement_type_id", movementTypeID))
		return nil, err
	}
	if movement.Status != domain.StatusActive {
		return nil, apperrors.Validation(apperrors.NewFieldError("movementId", "movement type is inactive"))
	}
	return movement, nil
}

func (s *titleService) loadPartner(ctx context.Context, partnerID *string) (*domain.Partner, error) {
	if partnerID == nil || *partnerID == "" {
		return nil, nil
	}
	partner, err := s.partnerRepo.FindPartnerByID(ctx, *partnerID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find partner", slog.String("partner_id", *partnerID))
		return nil, err
	}
	return partner, nil
}
