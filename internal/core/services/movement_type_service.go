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
	"github.com/SscSPs/contabil_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

type movementTypeService struct {
	BaseService
	movementRepo portsrepo.MovementTypeRepositoryFacade
	accountRepo  portsrepo.AccountReader
}

// NewMovementTypeService creates a new movement type service.
func NewMovementTypeService(movementRepo portsrepo.MovementTypeRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.MovementTypeSvcFacade {
	return &movementTypeService{movementRepo: movementRepo, accountRepo: accountRepo}
}

var _ portssvc.MovementTypeSvcFacade = (*movementTypeService)(nil)

// checkAccounts validates that the pair is distinct and that both accounts exist and accept postings.
// A missing account is reported as not found; one that exists but cannot take postings fails validation.
// On success the loaded accounts are attached to m.
func (s *movementTypeService) checkAccounts(ctx context.Context, m *domain.MovementType) error {
	if !m.HasDistinctAccounts() {
		return apperrors.Validation(apperrors.NewFieldError("creditAccountId", "debit and credit accounts must differ"))
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{m.DebitAccountID, m.CreditAccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load movement type accounts")
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, id := range []string{m.DebitAccountID, m.CreditAccountID} {
		if _, ok := accounts[id]; !ok {
			return apperrors.NewNotFoundError("account", id)
		}
	}

	var errs error
	check := func(field string, acc domain.Account) *domain.Account {
		if !acc.IsPostable() {
			errs = multierr.Append(errs, apperrors.NewFieldError(field, "account "+acc.Code+" does not accept postings"))
		}
		return &acc
	}
	m.DebitAccount = check("debitAccountId", accounts[m.DebitAccountID])
	m.CreditAccount = check("creditAccountId", accounts[m.CreditAccountID])
	return apperrors.Validation(errs)
}

func (s *movementTypeService) CreateMovementType(ctx context.Context, caps domain.Capabilities, req dto.CreateMovementTypeRequest, userID string) (*domain.MovementType, error) {
	if err := s.Authorize(ctx, caps, domain.ActionCreate, domain.ResourceMovementType); err != nil {
		return nil, err
	}

	now := time.Now()
	status := domain.StatusActive
	if req.Status != "" {
		status = domain.Status(req.Status)
	}
	m := domain.MovementType{
		MovementTypeID:  uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Status:          status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.checkAccounts(ctx, &m); err != nil {
		return nil, err
	}

	if err := s.movementRepo.SaveMovementType(ctx, m); err != nil {
		s.logUnexpected(ctx, err, "Failed to save movement type", slog.String("name", m.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Movement type created", slog.String("movement_type_id", m.MovementTypeID))
	return &m, nil
}

func (s *movementTypeService) GetMovementTypeByID(ctx context.Context, caps domain.Capabilities, movementTypeID string) (*domain.MovementType, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceMovementType); err != nil {
		return nil, err
	}
	m, err := s.movementRepo.FindMovementTypeByID(ctx, movementTypeID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find movement type", slog.String("movement_type_id", movementTypeID))
		return nil, err
	}
	return m, nil
}

func (s *movementTypeService) ListMovementTypes(ctx context.Context, caps domain.Capabilities, params dto.ListMovementTypesParams) (*dto.ListMovementTypesResponse, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceMovementType); err != nil {
		return nil, err
	}
	filter := params.ToFilter()
	items, total, err := s.movementRepo.ListMovementTypes(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movement types")
		return nil, fmt.Errorf("failed to list movement types: %w", err)
	}
	return &dto.ListMovementTypesResponse{
		Data:       dto.ToListMovementTypeResponse(items),
		Pagination: pagination.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *movementTypeService) UpdateMovementType(ctx context.Context, caps domain.Capabilities, movementTypeID string, req dto.UpdateMovementTypeRequest, userID string) (*domain.MovementType, error) {
	if err := s.Authorize(ctx, caps, domain.ActionUpdate, domain.ResourceMovementType); err != nil {
		return nil, err
	}
	m, err := s.movementRepo.FindMovementTypeByID(ctx, movementTypeID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find movement type", slog.String("movement_type_id", movementTypeID))
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	accountsChanged := false
	if req.DebitAccountID != nil {
		accountsChanged = accountsChanged || *req.DebitAccountID != m.DebitAccountID
		m.DebitAccountID = *req.DebitAccountID
	}
	if req.CreditAccountID != nil {
		accountsChanged = accountsChanged || *req.CreditAccountID != m.CreditAccountID
		m.CreditAccountID = *req.CreditAccountID
	}
	if accountsChanged {
		if err := s.checkAccounts(ctx, m); err != nil {
			return nil, err
		}
	}

	m.LastUpdatedAt = time.Now()
	m.LastUpdatedBy = userID
	if err := s.movementRepo.UpdateMovementType(ctx, *m); err != nil {
		s.logUnexpected(ctx, err, "Failed to update movement type", slog.String("movement_type_id", movementTypeID))
		return nil, err
	}
	return m, nil
}

func (s *movementTypeService) DeleteMovementType(ctx context.Context, caps domain.Capabilities, movementTypeID string) error {
	if err := s.Authorize(ctx, caps, domain.ActionDelete, domain.ResourceMovementType); err != nil {
		return err
	}
	if _, err := s.movementRepo.FindMovementTypeByID(ctx, movementTypeID); err != nil {
		return err
	}
	used, err := s.movementRepo.CountTitlesByMovementType(ctx, movementTypeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count titles for movement type", slog.String("movement_type_id", movementTypeID))
		return fmt.Errorf("failed to check movement type usage: %w", err)
	}
	if used > 0 {
		return fmt.Errorf("%w: movement type is used by %d titles", apperrors.ErrConflict, used)
	}
	if err := s.movementRepo.DeleteMovementType(ctx, movementTypeID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete movement type", slog.String("movement_type_id", movementTypeID))
		return err
	}
	return nil
}

func (s *movementTypeService) InactivateMovementType(ctx context.Context, caps domain.Capabilities, movementTypeID string, userID string) (*domain.MovementType, error) {
	if err := s.Authorize(ctx, caps, domain.ActionUpdate, domain.ResourceMovementType); err != nil {
		return nil, err
	}
	m, err := s.movementRepo.FindMovementTypeByID(ctx, movementTypeID)
	if err != nil {
		return nil, err
	}
	if m.Status == domain.StatusInactive {
		return nil, fmt.Errorf("%w: movement type is already inactive", apperrors.ErrConflict)
	}
	m.Status = domain.StatusInactive
	m.LastUpdatedAt = time.Now()
	m.LastUpdatedBy = userID
	if err := s.movementRepo.UpdateMovementType(ctx, *m); err != nil {
		s.logUnexpected(ctx, err, "Failed to inactivate movement type", slog.String("movement_type_id", movementTypeID))
		return nil, err
	}
	return m, nil
}
