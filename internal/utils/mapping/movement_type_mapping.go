package mapping

import (
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/models"
)

// ToModelMovementType converts a domain MovementType to a model MovementType.
// Attached accounts are not part of the row.
func ToModelMovementType(d domain.MovementType) models.MovementType {
	return models.MovementType{
		MovementTypeID:  d.MovementTypeID,
		Name:            d.Name,
		Description:     d.Description,
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovementType converts a model MovementType to a domain MovementType
func ToDomainMovementType(m models.MovementType) domain.MovementType {
	return domain.MovementType{
		MovementTypeID:  m.MovementTypeID,
		Name:            m.Name,
		Description:     m.Description,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		Status:          domain.Status(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
