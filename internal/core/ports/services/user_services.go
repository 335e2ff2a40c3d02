package services

import (
	"context"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/dto"
)

// UserSvcFacade defines operations on users
type UserSvcFacade interface {
	// RegisterUser creates a user holding the default role.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// PermissionSvc resolves what a user may do
type PermissionSvc interface {
	// CapabilitiesForUser loads the permissions of the user's role.
	CapabilitiesForUser(ctx context.Context, userID string) (domain.Capabilities, error)
}

// AuthSvc authenticates users with local credentials
type AuthSvc interface {
	// Login verifies credentials and returns a signed access token with its expiry.
	Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, error)
}
