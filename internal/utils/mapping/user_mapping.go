package mapping

import (
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		RoleID:       d.RoleID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		RoleID:       m.RoleID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRole converts a model Role to a domain Role
func ToDomainRole(m models.Role) domain.Role {
	return domain.Role{RoleID: m.RoleID, Name: m.Name, Description: m.Description}
}

// ToDomainPermissions converts role grants to domain permissions
func ToDomainPermissions(ms []models.RolePermission) []domain.Permission {
	ds := make([]domain.Permission, len(ms))
	for i, m := range ms {
		ds[i] = domain.Permission{Resource: domain.Resource(m.Resource), Action: domain.Action(m.Action)}
	}
	return ds
}
