package domain

// MovementType pairs a fixed debit account with a fixed credit account. Titles pick a
// movement type and are posted against its two accounts.
type MovementType struct {
	MovementTypeID  string   `json:"movementTypeID"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DebitAccountID  string   `json:"debitAccountID"`
	CreditAccountID string   `json:"creditAccountID"`
	Status          Status   `json:"status"`
	DebitAccount    *Account `json:"debitAccount,omitempty"`
	CreditAccount   *Account `json:"creditAccount,omitempty"`
	AuditFields
}

// HasDistinctAccounts reports whether the debit and credit sides point at different accounts.
func (m MovementType) HasDistinctAccounts() bool {
	return m.DebitAccountID != m.CreditAccountID
}

// MovementTypeFilter narrows movement type list queries.
type MovementTypeFilter struct {
	ListOptions
	Name            string
	Status          *Status
	DebitAccountID  string
	CreditAccountID string
}
