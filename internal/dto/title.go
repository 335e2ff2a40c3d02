package dto

import (
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTitleRequest defines the data needed to create and post a title.
type CreateTitleRequest struct {
	Code        string          `json:"code" binding:"omitempty,max=50"` // generated when empty
	Description string          `json:"description" binding:"max=500"`
	Date        *time.Time      `json:"date"` // defaults to now
	Value       decimal.Decimal `json:"value" binding:"positive_decimal"`
	MovementID  string          `json:"movementId" binding:"required"`
	PartnerID   *string         `json:"partnerId"`
	Status      string          `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PAID"`
}

// UpdateTitleRequest defines the fields that may change on an ACTIVE title.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTitleRequest struct {
	Code        *string          `json:"code" binding:"omitempty,max=50"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Date        *time.Time       `json:"date"`
	Value       *decimal.Decimal `json:"value" binding:"omitempty,positive_decimal"`
	MovementID  *string          `json:"movementId"`
	PartnerID   *string          `json:"partnerId"`
}

// ListTitlesParams defines query parameters for listing titles.
type ListTitlesParams struct {
	ListParams
	Status     string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PAID"`
	MovementID string `form:"movementId"`
	PartnerID  string `form:"partnerId"`
}

// ToFilter converts the params into a domain filter.
func (p ListTitlesParams) ToFilter() domain.TitleFilter {
	f := domain.TitleFilter{
		ListOptions:    p.ToListOptions(),
		MovementTypeID: p.MovementID,
		PartnerID:      p.PartnerID,
	}
	if p.Status != "" {
		s := domain.TitleStatus(p.Status)
		f.Status = &s
	}
	return f
}

// TitleResponse defines the data returned for a title.
type TitleResponse struct {
	TitleID       string                `json:"titleID"`
	Code          string                `json:"code"`
	Description   string                `json:"description"`
	Date          time.Time             `json:"date"`
	Value         decimal.Decimal       `json:"value"`
	Status        domain.TitleStatus    `json:"status"`
	MovementID    string                `json:"movementId"`
	PartnerID     *string               `json:"partnerId"`
	PaidAt        *time.Time            `json:"paidAt,omitempty"`
	Movement      *MovementTypeResponse `json:"movement,omitempty"`
	Partner       *PartnerResponse      `json:"partner,omitempty"`
	Journal       *JournalEntryResponse `json:"journal,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy string                `json:"lastUpdatedBy"`
}

// CreateTitleResponse is the title together with the journal entry it produced.
type CreateTitleResponse struct {
	Title   TitleResponse        `json:"title"`
	Journal JournalEntryResponse `json:"journal"`
}

// ListTitlesResponse wraps one page of titles.
type ListTitlesResponse struct {
	Data       []TitleResponse `json:"data"`
	Pagination PaginationMeta  `json:"pagination"`
}

// ToTitleResponse converts a domain.Title, including whatever relations are loaded.
func ToTitleResponse(t *domain.Title) TitleResponse {
	res := TitleResponse{
		TitleID:       t.TitleID,
		Code:          t.Code,
		Description:   t.Description,
		Date:          t.Date,
		Value:         t.Value,
		Status:        t.Status,
		MovementID:    t.MovementTypeID,
		PartnerID:     t.PartnerID,
		PaidAt:        t.PaidAt,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
	if t.MovementType != nil {
		m := ToMovementTypeResponse(t.MovementType)
		res.Movement = &m
	}
	if t.Partner != nil {
		p := ToPartnerResponse(t.Partner)
		res.Partner = &p
	}
	if t.Journal != nil {
		j := ToJournalEntryResponse(t.Journal)
		res.Journal = &j
	}
	return res
}

// ToCreateTitleResponse splits a freshly posted title into the {title, journal} pair.
func ToCreateTitleResponse(t *domain.Title) CreateTitleResponse {
	res := CreateTitleResponse{Title: ToTitleResponse(t)}
	if t.Journal != nil {
		res.Journal = ToJournalEntryResponse(t.Journal)
	}
	return res
}

// ToListTitleResponse converts a slice of titles.
func ToListTitleResponse(items []domain.Title) []TitleResponse {
	res := make([]TitleResponse, len(items))
	for i := range items {
		res[i] = ToTitleResponse(&items[i])
	}
	return res
}
