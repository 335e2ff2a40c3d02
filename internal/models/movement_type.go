package models

// MovementType pairs the debit and credit accounts a title posts to.
type MovementType struct {
	MovementTypeID  string `db:"movement_type_id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	DebitAccountID  string `db:"debit_account_id"`
	CreditAccountID string `db:"credit_account_id"`
	Status          string `db:"status"`
	AuditFields
}
