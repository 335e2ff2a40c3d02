package dto

import (
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// CreatePartnerRequest defines the data needed to register a partner.
type CreatePartnerRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Address  string `json:"address" binding:"required"`
	Document string `json:"document" binding:"required,max=32"`
	Status   string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdatePartnerRequest defines the fields that may change on a partner.
type UpdatePartnerRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Address  *string `json:"address"`
	Document *string `json:"document" binding:"omitempty,max=32"`
}

// ListPartnersParams defines query parameters for listing partners.
type ListPartnersParams struct {
	ListParams
	Name   string `form:"name"`
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ToFilter converts the params into a domain filter.
func (p ListPartnersParams) ToFilter() domain.PartnerFilter {
	f := domain.PartnerFilter{ListOptions: p.ToListOptions(), Name: p.Name}
	if p.Status != "" {
		s := domain.Status(p.Status)
		f.Status = &s
	}
	return f
}

// PartnerResponse defines the data returned for a partner.
type PartnerResponse struct {
	PartnerID     string        `json:"partnerID"`
	Name          string        `json:"name"`
	Address       string        `json:"address"`
	Document      string        `json:"document"`
	Status        domain.Status `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	CreatedBy     string        `json:"createdBy"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy string        `json:"lastUpdatedBy"`
}

// ListPartnersResponse wraps one page of partners.
type ListPartnersResponse struct {
	Data       []PartnerResponse `json:"data"`
	Pagination PaginationMeta    `json:"pagination"`
}

// ToPartnerResponse converts a domain.Partner to its DTO.
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		PartnerID:     p.PartnerID,
		Name:          p.Name,
		Address:       p.Address,
		Document:      p.Document,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToListPartnerResponse converts a slice of partners.
func ToListPartnerResponse(items []domain.Partner) []PartnerResponse {
	res := make([]PartnerResponse, len(items))
	for i := range items {
		res[i] = ToPartnerResponse(&items[i])
	}
	return res
}
