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

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new chart of accounts service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, caps domain.Capabilities, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.Authorize(ctx, caps, domain.ActionCreate, domain.ResourceAccount); err != nil {
		return nil, err
	}

	var parentID *string
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parentID = req.ParentAccountID
	}
	parentCode, level, err := s.parentPosition(ctx, parentID)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		existing, err := s.accountRepo.ListChildCodes(ctx, parentID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list sibling codes")
			return nil, fmt.Errorf("failed to generate account code: %w", err)
		}
		code = domain.NextChildCode(parentCode, existing)
	} else if domain.ParentCode(code) != parentCode {
		return nil, apperrors.Validation(apperrors.NewFieldError("code",
			fmt.Sprintf("code %s does not sit directly under %q", code, parentCode)))
	}

	status := domain.StatusActive
	if req.Status != "" {
		status = domain.Status(req.Status)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            code,
		Name:            req.Name,
		Description:     req.Description,
		Level:           level,
		AcceptsPosting:  req.AcceptsPosting,
		Status:          status,
		ParentAccountID: parentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.logUnexpected(ctx, err, "Failed to save account", slog.String("code", account.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// parentPosition returns the parent's code and the level a new child gets.
func (s *accountService) parentPosition(ctx context.Context, parentID *string) (string, int, error) {
	if parentID == nil {
		return "", 1, nil
	}
	parent, err := s.accountRepo.FindAccountByID(ctx, *parentID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find parent account", slog.String("parent_id", *parentID))
		return "", 0, err
	}
	return parent.Code, parent.Level + 1, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, caps domain.Capabilities, accountID string) (*domain.Account, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceAccount); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		return nil, err
	}
	s.LogDebug(ctx, "Account retrieved", slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, caps domain.Capabilities, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceAccount); err != nil {
		return nil, err
	}
	filter := params.ToFilter()
	accounts, total, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", filter.Limit), slog.Int("page", filter.Page))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return &dto.ListAccountsResponse{
		Data:       dto.ToListAccountResponse(accounts),
		Pagination: pagination.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

func (s *accountService) GetAccountTree(ctx context.Context, caps domain.Capabilities) ([]*domain.AccountNode, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceAccount); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAllAccounts(ctx, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for tree")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return domain.BuildTree(accounts), nil
}

func (s *accountService) NextAccountCode(ctx context.Context, caps domain.Capabilities, parentID *string) (*dto.NextCodeResponse, error) {
	if err := s.Authorize(ctx, caps, domain.ActionRead, domain.ResourceAccount); err != nil {
		return nil, err
	}
	parentCode, level, err := s.parentPosition(ctx, parentID)
	if err != nil {
		return nil, err
	}
	existing, err := s.accountRepo.ListChildCodes(ctx, parentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sibling codes")
		return nil, fmt.Errorf("failed to generate account code: %w", err)
	}
	return &dto.NextCodeResponse{
		ParentAccountID: parentID,
		Code:            domain.NextChildCode(parentCode, existing),
		Level:           level,
	}, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, caps domain.Capabilities, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.Authorize(ctx, caps, domain.ActionUpdate, domain.ResourceAccount); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, apperrors.Validation(apperrors.NewFieldError("name", "must not be empty"))
		}
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.AcceptsPosting != nil {
		account.AcceptsPosting = *req.AcceptsPosting
	}
	return s.save(ctx, account, userID)
}

func (s *accountService) InactivateAccount(ctx context.Context, caps domain.Capabilities, accountID string, userID string) (*domain.Account, error) {
	if err := s.Authorize(ctx, caps, domain.ActionUpdate, domain.ResourceAccount); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == domain.StatusInactive {
		return nil, fmt.Errorf("%w: account %s is already inactive", apperrors.ErrConflict, account.Code)
	}
	account.Status = domain.StatusInactive
	return s.save(ctx, account, userID)
}

func (s *accountService) DeleteAccount(ctx context.Context, caps domain.Capabilities, accountID string) error {
	if err := s.Authorize(ctx, caps, domain.ActionDelete, domain.ResourceAccount); err != nil {
		return err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	children, lines, err := s.accountRepo.AccountUsage(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account usage", slog.String("account_id", accountID))
		return fmt.Errorf("failed to check account usage: %w", err)
	}
	if children > 0 {
		return fmt.Errorf("%w: account has %d child accounts", apperrors.ErrConflict, children)
	}
	if lines > 0 {
		return fmt.Errorf("%w: account has %d journal lines", apperrors.ErrConflict, lines)
	}
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) save(ctx context.Context, account *domain.Account, userID string) (*domain.Account, error) {
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.logUnexpected(ctx, err, "Failed to update account", slog.String("account_id", account.AccountID))
		return nil, err
	}
	return account, nil
}
