package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a node in the chart of accounts.
type Account struct {
	AccountID       string  `json:"accountID"`
	Code            string  `json:"code"` // dotted hierarchy, e.g. "1.2.3"
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Level           int     `json:"level"` // 1 for roots, parent.Level+1 otherwise
	AcceptsPosting  bool    `json:"acceptsPosting"`
	Status          Status  `json:"status"`
	ParentAccountID *string `json:"parentAccountID,omitempty"`
	AuditFields
}

// IsPostable reports whether journal lines may target the account.
func (a Account) IsPostable() bool {
	return a.AcceptsPosting && a.Status == StatusActive
}

// AccountFilter narrows account list queries.
type AccountFilter struct {
	ListOptions
	Name           string
	Description    string
	Level          *int
	AcceptsPosting *bool
	Status         *Status
	ParentID       *string
}

// AccountTotals are the debit/credit sums of an account. Balance is TotalDebit - TotalCredit.
type AccountTotals struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// NewAccountTotals builds totals from the two sums.
func NewAccountTotals(debit, credit decimal.Decimal) AccountTotals {
	return AccountTotals{TotalDebit: debit, TotalCredit: credit, Balance: debit.Sub(credit)}
}

// Add returns the element-wise sum of t and o.
func (t AccountTotals) Add(o AccountTotals) AccountTotals {
	return AccountTotals{
		TotalDebit:  t.TotalDebit.Add(o.TotalDebit),
		TotalCredit: t.TotalCredit.Add(o.TotalCredit),
		Balance:     t.Balance.Add(o.Balance),
	}
}

// Sub returns the movement between an earlier snapshot o and t.
func (t AccountTotals) Sub(o AccountTotals) AccountTotals {
	return AccountTotals{
		TotalDebit:  t.TotalDebit.Sub(o.TotalDebit),
		TotalCredit: t.TotalCredit.Sub(o.TotalCredit),
		Balance:     t.Balance.Sub(o.Balance),
	}
}

// AccountNode is an account placed in the tree, with its (possibly aggregated) totals.
type AccountNode struct {
	Account
	AccountTotals
	Children []*AccountNode `json:"children"`
}

// IsLeaf reports whether the node has no children.
func (n *AccountNode) IsLeaf() bool {
	return len(n.Children) == 0
}
