package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/utils"
)

// authService issues JWT access tokens for local users.
type authService struct {
	BaseService
	signer   *utils.TokenSigner
	userRepo portsrepo.UserReader
}

// NewAuthService creates a new instance of authService.
func NewAuthService(signer *utils.TokenSigner, userRepo portsrepo.UserReader) portssvc.AuthSvc {
	return &authService{signer: signer, userRepo: userRepo}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Login returns the same error for an unknown user and a wrong password.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown user")
			return "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load user for login")
		return "", time.Time{}, fmt.Errorf("failed to load user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := s.signer.Sign(user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return token, expiresAt, nil
}
