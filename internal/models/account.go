package models

// Account is a row of the chart of accounts.
type Account struct {
	AccountID       string  `db:"account_id"`
	Code            string  `db:"code"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	Level           int     `db:"level"`
	AcceptsPosting  bool    `db:"accepts_posting"`
	Status          string  `db:"status"`
	ParentAccountID *string `db:"parent_account_id"` // Nullable
	AuditFields
}
