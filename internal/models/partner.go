package models

// Partner is a customer or supplier referenced by titles.
type Partner struct {
	PartnerID string `db:"partner_id"`
	Name      string `db:"name"`
	Address   string `db:"address"`
	Document  string `db:"document"`
	Status    string `db:"status"`
	AuditFields
}
