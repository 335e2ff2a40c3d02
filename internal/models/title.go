package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Title is a receivable or payable document row.
type Title struct {
	TitleID        string          `db:"title_id"`
	Code           string          `db:"code"`
	Description    string          `db:"description"`
	TitleDate      time.Time       `db:"title_date"`
	Value          decimal.Decimal `db:"value"`
	Status         string          `db:"status"`
	MovementTypeID string          `db:"movement_type_id"`
	PartnerID      *string         `db:"partner_id"` // Nullable
	PaidAt         *time.Time      `db:"paid_at"`    // Set when the title is paid
	AuditFields
}
