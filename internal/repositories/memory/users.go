package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("user", userID)
	}
	return &u, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user", username)
}

func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, user.Username) {
			return fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, user.Username)
		}
	}
	if _, ok := s.roles[user.RoleID]; !ok {
		return apperrors.NewNotFoundError("role", user.RoleID)
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) FindPermissionsByRoleID(ctx context.Context, roleID string) ([]domain.Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.roles[roleID]; !ok {
		return nil, apperrors.NewNotFoundError("role", roleID)
	}
	return append([]domain.Permission(nil), s.rolePerms[roleID]...), nil
}

func (s *Store) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.roles {
		if strings.EqualFold(r.Name, name) {
			return &r, nil
		}
	}
	return nil, apperrors.NewNotFoundError("role", name)
}
