package mapping

import (
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/models"
)

// ToModelTitle converts a domain Title to a model Title
func ToModelTitle(d domain.Title) models.Title {
	return models.Title{
		TitleID:        d.TitleID,
		Code:           d.Code,
		Description:    d.Description,
		TitleDate:      d.Date,
		Value:          d.Value,
		Status:         string(d.Status),
		MovementTypeID: d.MovementTypeID,
		PartnerID:      d.PartnerID,
		PaidAt:         d.PaidAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTitle converts a model Title to a domain Title without its relations.
func ToDomainTitle(m models.Title) domain.Title {
	return domain.Title{
		TitleID:        m.TitleID,
		Code:           m.Code,
		Description:    m.Description,
		Date:           m.TitleDate,
		Value:          m.Value,
		Status:         domain.TitleStatus(m.Status),
		MovementTypeID: m.MovementTypeID,
		PartnerID:      m.PartnerID,
		PaidAt:         m.PaidAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
