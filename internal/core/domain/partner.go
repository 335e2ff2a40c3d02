package domain

// Partner is the counterparty of a title (customer or supplier).
type Partner struct {
	PartnerID string `json:"partnerID"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Document  string `json:"document"` // tax id
	Status    Status `json:"status"`
	AuditFields
}

// PartnerFilter narrows partner list queries.
type PartnerFilter struct {
	ListOptions
	Name   string
	Status *Status
}
