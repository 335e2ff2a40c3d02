package repositories

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// PermissionReader defines read operations for the RBAC tables
type PermissionReader interface {
	// FindPermissionsByRoleID returns every permission granted to the role.
	FindPermissionsByRoleID(ctx context.Context, roleID string) ([]domain.Permission, error)

	// FindRoleByName looks a role up by its unique name.
	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)
}
