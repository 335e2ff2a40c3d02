package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the header of a posting. Entries are immutable once written.
type JournalEntry struct {
	JournalEntryID string    `db:"journal_entry_id"`
	TitleID        string    `db:"title_id"`
	EntryDate      time.Time `db:"entry_date"`
	OriginType     string    `db:"origin_type"`
	Description    string    `db:"description"`
	CreatedAt      time.Time `db:"created_at"`
	CreatedBy      string    `db:"created_by"`
}

// JournalLine is one debit or credit of an entry. Amount is always positive.
type JournalLine struct {
	JournalLineID  string          `db:"journal_line_id"`
	JournalEntryID string          `db:"journal_entry_id"`
	AccountID      string          `db:"account_id"`
	LineType       string          `db:"line_type"`
	Amount         decimal.Decimal `db:"amount"`
	CreatedAt      time.Time       `db:"created_at"`
}
