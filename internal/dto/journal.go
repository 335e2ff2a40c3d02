package dto

import (
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse is one side of a journal entry.
type JournalLineResponse struct {
	JournalLineID string          `json:"journalLineID"`
	AccountID     string          `json:"accountID"`
	Account       *AccountSummary `json:"account,omitempty"`
	Type          domain.LineType `json:"type"` // DEBIT or CREDIT
	Amount        decimal.Decimal `json:"amount"`
}

// JournalEntryResponse is a journal entry with its lines and side totals.
type JournalEntryResponse struct {
	JournalEntryID string                `json:"journalEntryID"`
	TitleID        string                `json:"titleID"`
	EntryDate      time.Time             `json:"entryDate"`
	OriginType     domain.OriginType     `json:"originType"`
	Description    string                `json:"description"`
	Lines          []JournalLineResponse `json:"lines"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
}

// ListJournalEntriesResponse wraps a token-paginated list of entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// LedgerLineResponse is a journal line seen from its account.
type LedgerLineResponse struct {
	JournalLineID  string          `json:"journalLineID"`
	JournalEntryID string          `json:"journalEntryID"`
	TitleID        string          `json:"titleID"`
	EntryDate      time.Time       `json:"entryDate"`
	Description    string          `json:"description"`
	Type           domain.LineType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// ListLedgerResponse wraps a token-paginated list of ledger lines, newest first.
// OpeningBalance is the balance before the oldest line of the page and ClosingBalance
// the balance after the newest one.
type ListLedgerResponse struct {
	AccountID      string               `json:"accountID"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
	Lines          []LedgerLineResponse `json:"lines"`
	NextToken      *string              `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			JournalLineID: l.JournalLineID,
			AccountID:     l.AccountID,
			Account:       ToAccountSummary(l.Account),
			Type:          l.Type,
			Amount:        l.Amount,
		}
	}
	debit, credit := e.Totals()
	return JournalEntryResponse{
		JournalEntryID: e.JournalEntryID,
		TitleID:        e.TitleID,
		EntryDate:      e.EntryDate,
		OriginType:     e.OriginType,
		Description:    e.Description,
		Lines:          lines,
		TotalDebit:     debit,
		TotalCredit:    credit,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
}

// ToListJournalEntryResponse converts a slice of entries.
func ToListJournalEntryResponse(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}

// ToLedgerLineResponses converts ledger lines.
func ToLedgerLineResponses(lines []domain.LedgerLine) []LedgerLineResponse {
	res := make([]LedgerLineResponse, len(lines))
	for i, l := range lines {
		res[i] = LedgerLineResponse{
			JournalLineID:  l.JournalLineID,
			JournalEntryID: l.JournalEntryID,
			TitleID:        l.TitleID,
			EntryDate:      l.EntryDate,
			Description:    l.Description,
			Type:           l.Type,
			Amount:         l.Amount,
			RunningBalance: l.RunningBalance,
		}
	}
	return res
}
