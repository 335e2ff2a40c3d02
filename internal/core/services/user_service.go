package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	permRepo    portsrepo.PermissionReader
	defaultRole string
}

// NewUserService creates a user service that assigns defaultRole to new users.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, permRepo portsrepo.PermissionReader, defaultRole string) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, permRepo: permRepo, defaultRole: defaultRole}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		return nil, apperrors.Validation(apperrors.NewFieldError("username", "is required"))
	}

	role, err := s.permRepo.FindRoleByName(ctx, s.defaultRole)
	if err != nil {
		s.LogError(ctx, err, "Default role not found", slog.String("role", s.defaultRole))
		return nil, fmt.Errorf("failed to resolve default role: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if errors.Is(err, utils.ErrPasswordEmpty) || errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, apperrors.Validation(apperrors.NewFieldError("password", err.Error()))
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     username,
		Name:         req.Name,
		PasswordHash: hash,
		RoleID:       role.RoleID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.logUnexpected(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, err
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", userID), slog.String("role", role.Name))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

// permissionService resolves role grants into domain.Capabilities.
type permissionService struct {
	BaseService
	userRepo portsrepo.UserReader
	permRepo portsrepo.PermissionReader
}

// NewPermissionService creates the capability resolver used by the HTTP layer.
func NewPermissionService(userRepo portsrepo.UserReader, permRepo portsrepo.PermissionReader) portssvc.PermissionSvc {
	return &permissionService{userRepo: userRepo, permRepo: permRepo}
}

var _ portssvc.PermissionSvc = (*permissionService)(nil)

func (s *permissionService) CapabilitiesForUser(ctx context.Context, userID string) (domain.Capabilities, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to load user for capabilities", slog.String("user_id", userID))
		return domain.Capabilities{}, err
	}
	perms, err := s.permRepo.FindPermissionsByRoleID(ctx, user.RoleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load role permissions", slog.String("role_id", user.RoleID))
		return domain.Capabilities{}, fmt.Errorf("failed to load permissions: %w", err)
	}
	return domain.NewCapabilities(perms...), nil
}
