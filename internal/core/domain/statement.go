package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Root codes of the chart of accounts that the financial statements read.
const (
	RootAssets      = "1"
	RootLiabilities = "2"
	RootEquity      = "3"
	RootRevenue     = "4"
	RootExpenses    = "5"
)

// RootCode returns the top-level segment of a dotted account code.
func RootCode(code string) string {
	root, _, _ := strings.Cut(code, ".")
	return root
}

// creditNatured reports whether accounts under root grow with credits.
func creditNatured(root string) bool {
	return root == RootLiabilities || root == RootEquity || root == RootRevenue
}

// StatementLine is one account on a financial statement. Amount is signed by the
// account's nature, so a revenue account with credits shows a positive amount.
type StatementLine struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// StatementSection groups the lines of one root account.
type StatementSection struct {
	Lines []StatementLine `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// NewStatementSection returns an empty section.
func NewStatementSection() StatementSection {
	return StatementSection{Lines: []StatementLine{}, Total: decimal.Zero}
}

// Append adds the account with its debit-minus-credit balance, flipping the sign for
// credit-natured roots.
func (s *StatementSection) Append(account Account, balance decimal.Decimal) {
	amount := balance
	if creditNatured(RootCode(account.Code)) {
		amount = balance.Neg()
	}
	s.Lines = append(s.Lines, StatementLine{
		AccountID:   account.AccountID,
		AccountCode: account.Code,
		AccountName: account.Name,
		Amount:      amount,
	})
	s.Total = s.Total.Add(amount)
}

// IncomeStatement is the result of a period: revenue minus expenses.
type IncomeStatement struct {
	Revenue  StatementSection `json:"revenue"`
	Expenses StatementSection `json:"expenses"`
	Result   decimal.Decimal  `json:"result"`
}

// BalanceSheet is the financial position at a date. Result is revenue minus expenses
// accumulated up to the date and is counted in TotalEquity, so Balanced holds whenever
// every posted account lives under one of the five roots.
type BalanceSheet struct {
	Assets                    StatementSection `json:"assets"`
	Liabilities               StatementSection `json:"liabilities"`
	Equity                    StatementSection `json:"equity"`
	Result                    decimal.Decimal  `json:"result"`
	TotalEquity               decimal.Decimal  `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal  `json:"totalLiabilitiesAndEquity"`
	Balanced                  bool             `json:"balanced"`
}
