// Package memory implements every repository port in process. It backs the scenario
// tests and STORAGE_DRIVER=memory; foreign keys and unique codes are enforced the same
// way the PostgreSQL schema enforces them.
package memory

import (
	"sync"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
)

// Store holds all rows behind a single lock. A write either applies completely or
// leaves the maps untouched.
type Store struct {
	mu sync.RWMutex

	accounts      map[string]domain.Account
	movementTypes map[string]domain.MovementType
	partners      map[string]domain.Partner
	titles        map[string]domain.Title
	entries       map[string]domain.JournalEntry
	entryByTitle  map[string]string
	users         map[string]domain.User
	roles         map[string]domain.Role
	rolePerms     map[string][]domain.Permission
}

// NewStore returns an empty store with the ADMIN, ACCOUNTANT and VIEWER roles seeded.
func NewStore() *Store {
	s := &Store{
		accounts:      make(map[string]domain.Account),
		movementTypes: make(map[string]domain.MovementType),
		partners:      make(map[string]domain.Partner),
		titles:        make(map[string]domain.Title),
		entries:       make(map[string]domain.JournalEntry),
		entryByTitle:  make(map[string]string),
		users:         make(map[string]domain.User),
		roles:         make(map[string]domain.Role),
		rolePerms:     make(map[string][]domain.Permission),
	}
	s.seedRoles()
	return s
}

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      s,
		MovementTypeRepo: s,
		TitleRepo:        s,
		JournalRepo:      s,
		PartnerRepo:      s,
		UserRepo:         s,
		PermissionRepo:   s,
		ReportingRepo:    s,
	}
}

var (
	_ portsrepo.AccountRepositoryFacade      = (*Store)(nil)
	_ portsrepo.MovementTypeRepositoryFacade = (*Store)(nil)
	_ portsrepo.TitleRepositoryFacade        = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade      = (*Store)(nil)
	_ portsrepo.PartnerRepositoryFacade      = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade         = (*Store)(nil)
	_ portsrepo.PermissionReader             = (*Store)(nil)
	_ portsrepo.ReportingRepository          = (*Store)(nil)
)

func (s *Store) seedRoles() {
	grant := func(r domain.Resource, actions ...domain.Action) []domain.Permission {
		out := make([]domain.Permission, len(actions))
		for i, a := range actions {
			out[i] = domain.Permission{Resource: r, Action: a}
		}
		return out
	}

	accountant := append(grant(domain.ResourceTitle, domain.ActionManage),
		grant(domain.ResourceMovementType, domain.ActionManage)...)
	accountant = append(accountant, grant(domain.ResourcePartner, domain.ActionManage)...)
	accountant = append(accountant, grant(domain.ResourceAccount, domain.ActionCreate, domain.ActionRead, domain.ActionUpdate)...)
	accountant = append(accountant, grant(domain.ResourceJournalEntry, domain.ActionRead)...)
	accountant = append(accountant, grant(domain.ResourceReport, domain.ActionRead)...)
	accountant = append(accountant, grant(domain.ResourceUser, domain.ActionRead)...)

	seed := []struct {
		role  domain.Role
		perms []domain.Permission
	}{
		{domain.Role{RoleID: "role-admin", Name: "ADMIN", Description: "Full access"}, grant(domain.ResourceAll, domain.ActionManage)},
		{domain.Role{RoleID: "role-accountant", Name: "ACCOUNTANT", Description: "Posts titles and maintains the chart"}, accountant},
		{domain.Role{RoleID: "role-viewer", Name: "VIEWER", Description: "Read-only access"}, grant(domain.ResourceAll, domain.ActionRead)},
	}
	for _, r := range seed {
		s.roles[r.role.RoleID] = r.role
		s.rolePerms[r.role.RoleID] = r.perms
	}
}
