package mapping

import (
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/models"
)

func ToModelPartner(d domain.Partner) models.Partner {
	return models.Partner{
		PartnerID:   d.PartnerID,
		Name:        d.Name,
		Address:     d.Address,
		Document:    d.Document,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		PartnerID:   m.PartnerID,
		Name:        m.Name,
		Address:     m.Address,
		Document:    m.Document,
		Status:      domain.Status(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
