package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/contabil_ledger/internal/models"
	"github.com/SscSPs/contabil_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, password_hash, name, role_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)
	_ portsrepo.PermissionReader     = (*PgxUserRepository)(nil)
)

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	m, err := collectOne[models.User](ctx, r.Pool,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return nil, mapReadError(err, "user", userID)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	m, err := collectOne[models.User](ctx, r.Pool,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	if err != nil {
		return nil, mapReadError(err, "user", username)
	}
	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.UserID, m.Username, m.PasswordHash, m.Name, m.RoleID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapWriteError(err, "user")
}

func (r *PgxUserRepository) FindPermissionsByRoleID(ctx context.Context, roleID string) ([]domain.Permission, error) {
	rows, err := collectAll[models.RolePermission](ctx, r.Pool,
		`SELECT role_id, resource, action FROM role_permissions WHERE role_id = $1 ORDER BY resource, action`, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load permissions for role %s: %w", roleID, err)
	}
	return mapping.ToDomainPermissions(rows), nil
}

func (r *PgxUserRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	m, err := collectOne[models.Role](ctx, r.Pool,
		`SELECT role_id, name, description FROM roles WHERE name = $1`, name)
	if err != nil {
		return nil, mapReadError(err, "role", name)
	}
	role := mapping.ToDomainRole(m)
	return &role, nil
}
