package dto

import (
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// CreateMovementTypeRequest defines the data needed to create a movement type.
type CreateMovementTypeRequest struct {
	Name            string `json:"name" binding:"required,max=255"`
	Description     string `json:"description"`
	DebitAccountID  string `json:"debitAccountId" binding:"required"`
	CreditAccountID string `json:"creditAccountId" binding:"required"`
	Status          string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateMovementTypeRequest defines the fields that may change on a movement type.
type UpdateMovementTypeRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=255"`
	Description     *string `json:"description"`
	DebitAccountID  *string `json:"debitAccountId"`
	CreditAccountID *string `json:"creditAccountId"`
}

// ListMovementTypesParams defines query parameters for listing movement types.
type ListMovementTypesParams struct {
	ListParams
	Name            string `form:"name"`
	Status          string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	DebitAccountID  string `form:"debitAccountId"`
	CreditAccountID string `form:"creditAccountId"`
}

// ToFilter converts the params into a domain filter.
func (p ListMovementTypesParams) ToFilter() domain.MovementTypeFilter {
	f := domain.MovementTypeFilter{
		ListOptions:     p.ToListOptions(),
		Name:            p.Name,
		DebitAccountID:  p.DebitAccountID,
		CreditAccountID: p.CreditAccountID,
	}
	if p.Status != "" {
		s := domain.Status(p.Status)
		f.Status = &s
	}
	return f
}

// MovementTypeResponse defines the data returned for a movement type.
type MovementTypeResponse struct {
	MovementTypeID  string          `json:"movementTypeID"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	Status          domain.Status   `json:"status"`
	DebitAccount    *AccountSummary `json:"debitAccount,omitempty"`
	CreditAccount   *AccountSummary `json:"creditAccount,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// ListMovementTypesResponse wraps one page of movement types.
type ListMovementTypesResponse struct {
	Data       []MovementTypeResponse `json:"data"`
	Pagination PaginationMeta         `json:"pagination"`
}

// ToMovementTypeResponse converts a domain.MovementType to its DTO.
func ToMovementTypeResponse(m *domain.MovementType) MovementTypeResponse {
	return MovementTypeResponse{
		MovementTypeID:  m.MovementTypeID,
		Name:            m.Name,
		Description:     m.Description,
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		Status:          m.Status,
		DebitAccount:    ToAccountSummary(m.DebitAccount),
		CreditAccount:   ToAccountSummary(m.CreditAccount),
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
		LastUpdatedAt:   m.LastUpdatedAt,
		LastUpdatedBy:   m.LastUpdatedBy,
	}
}

// ToListMovementTypeResponse converts a slice of movement types.
func ToListMovementTypeResponse(items []domain.MovementType) []MovementTypeResponse {
	res := make([]MovementTypeResponse, len(items))
	for i := range items {
		res[i] = ToMovementTypeResponse(&items[i])
	}
	return res
}
