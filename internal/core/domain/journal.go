package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineType indicates whether a journal line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// OriginType records what produced a journal entry.
type OriginType string

const (
	OriginTitle OriginType = "TITLE"
)

// JournalEntry is one double-entry transaction. Debit and credit sides always sum to
// the same amount.
type JournalEntry struct {
	JournalEntryID string        `json:"journalEntryID"`
	TitleID        string        `json:"titleID"`
	EntryDate      time.Time     `json:"entryDate"`
	OriginType     OriginType    `json:"originType"`
	Description    string        `json:"description"`
	Lines          []JournalLine `json:"lines"`
	CreatedAt      time.Time     `json:"createdAt"`
	CreatedBy      string        `json:"createdBy"`
}

// JournalLine is one side of a journal entry.
type JournalLine struct {
	JournalLineID  string          `json:"journalLineID"`
	JournalEntryID string          `json:"journalEntryID"`
	AccountID      string          `json:"accountID"`
	Type           LineType        `json:"type"`
	Amount         decimal.Decimal `json:"amount"` // always positive
	Account        *Account        `json:"account,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Totals returns the debit and credit sums of the entry.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		switch l.Type {
		case Debit:
			debit = debit.Add(l.Amount)
		case Credit:
			credit = credit.Add(l.Amount)
		}
	}
	return debit, credit
}

// IsBalanced reports whether the entry has at least one positive debit line and one
// positive credit line and both sides sum to the same amount.
func (e JournalEntry) IsBalanced() bool {
	var hasDebit, hasCredit bool
	for _, l := range e.Lines {
		if !l.Amount.IsPositive() {
			return false
		}
		switch l.Type {
		case Debit:
			hasDebit = true
		case Credit:
			hasCredit = true
		default:
			return false
		}
	}
	if !hasDebit || !hasCredit {
		return false
	}
	debit, credit := e.Totals()
	return debit.Equal(credit)
}

// LedgerLine is a journal line seen from its account, with the entry context attached.
// RunningBalance is the account's debit-minus-credit balance right after the line.
type LedgerLine struct {
	JournalLine
	EntryDate      time.Time       `json:"entryDate"`
	TitleID        string          `json:"titleID"`
	Description    string          `json:"description"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}
