package dto

import (
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string  `json:"code" binding:"omitempty,max=64"` // generated from the parent when empty
	Name            string  `json:"name" binding:"required,max=255"`
	Description     string  `json:"description"`
	AcceptsPosting  bool    `json:"acceptsPosting"`
	ParentAccountID *string `json:"parentAccountId"`
	Status          string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=255"`
	Description    *string `json:"description"`
	AcceptsPosting *bool   `json:"acceptsPosting"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	ListParams
	Name           string `form:"name"`
	Description    string `form:"description"`
	Level          *int   `form:"level" binding:"omitempty,min=1"`
	AcceptsPosting *bool  `form:"acceptsPosting"`
	Status         string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	ParentID       string `form:"parentId"`
}

// ToFilter converts the params into a domain filter.
func (p ListAccountsParams) ToFilter() domain.AccountFilter {
	f := domain.AccountFilter{
		ListOptions:    p.ToListOptions(),
		Name:           p.Name,
		Description:    p.Description,
		Level:          p.Level,
		AcceptsPosting: p.AcceptsPosting,
	}
	if p.Status != "" {
		s := domain.Status(p.Status)
		f.Status = &s
	}
	if p.ParentID != "" {
		id := p.ParentID
		f.ParentID = &id
	}
	return f
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string        `json:"accountID"`
	Code            string        `json:"code"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Level           int           `json:"level"`
	AcceptsPosting  bool          `json:"acceptsPosting"`
	Status          domain.Status `json:"status"`
	ParentAccountID *string       `json:"parentAccountID"`
	CreatedAt       time.Time     `json:"createdAt"`
	CreatedBy       string        `json:"createdBy"`
	LastUpdatedAt   time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy   string        `json:"lastUpdatedBy"`
}

// AccountSummary is the short form embedded in other resources.
type AccountSummary struct {
	AccountID string `json:"accountID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
}

// ListAccountsResponse wraps one page of accounts.
type ListAccountsResponse struct {
	Data       []AccountResponse `json:"data"`
	Pagination PaginationMeta    `json:"pagination"`
}

// AccountNodeResponse is an account in the tree with its totals.
type AccountNodeResponse struct {
	AccountResponse
	TotalDebit  decimal.Decimal       `json:"totalDebit"`
	TotalCredit decimal.Decimal       `json:"totalCredit"`
	Balance     decimal.Decimal       `json:"balance"`
	Children    []AccountNodeResponse `json:"children"`
}

// NextCodeResponse carries a suggested code for a new child account.
type NextCodeResponse struct {
	ParentAccountID *string `json:"parentAccountID"`
	Code            string  `json:"code"`
	Level           int     `json:"level"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		Description:     acc.Description,
		Level:           acc.Level,
		AcceptsPosting:  acc.AcceptsPosting,
		Status:          acc.Status,
		ParentAccountID: acc.ParentAccountID,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToAccountSummary converts an optional account to its short form.
func ToAccountSummary(acc *domain.Account) *AccountSummary {
	if acc == nil {
		return nil
	}
	return &AccountSummary{AccountID: acc.AccountID, Code: acc.Code, Name: acc.Name}
}

// ToAccountTreeResponse converts a forest recursively.
func ToAccountTreeResponse(nodes []*domain.AccountNode) []AccountNodeResponse {
	res := make([]AccountNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, AccountNodeResponse{
			AccountResponse: ToAccountResponse(&n.Account),
			TotalDebit:      n.TotalDebit,
			TotalCredit:     n.TotalCredit,
			Balance:         n.Balance,
			Children:        ToAccountTreeResponse(n.Children),
		})
	}
	return res
}
