package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TitleStatus is the lifecycle state of a title.
type TitleStatus string

const (
	TitleActive   TitleStatus = "ACTIVE"
	TitleInactive TitleStatus = "INACTIVE"
	TitlePaid     TitleStatus = "PAID"
)

// TitleTransition names an operation that changes or depends on a title's state.
type TitleTransition string

const (
	TransitionUpdate     TitleTransition = "update"
	TransitionInactivate TitleTransition = "inactivate"
	TransitionPay        TitleTransition = "pay"
	TransitionRemove     TitleTransition = "remove"
)

// IsValid reports whether s is a known title status.
func (s TitleStatus) IsValid() bool {
	switch s {
	case TitleActive, TitleInactive, TitlePaid:
		return true
	}
	return false
}

// IsTerminal reports whether no further edits are accepted in s.
func (s TitleStatus) IsTerminal() bool {
	return s == TitleInactive || s == TitlePaid
}

// Allows reports whether transition t may run on a title in state s.
// Update, inactivate and pay need an ACTIVE title; remove is refused only once PAID.
func (s TitleStatus) Allows(t TitleTransition) bool {
	switch t {
	case TransitionUpdate, TransitionInactivate, TransitionPay:
		return s == TitleActive
	case TransitionRemove:
		return s == TitleActive || s == TitleInactive
	}
	return false
}

// Target returns the state a title ends up in after t. Transitions that keep the
// state return s unchanged.
func (s TitleStatus) Target(t TitleTransition) TitleStatus {
	switch t {
	case TransitionInactivate:
		return TitleInactive
	case TransitionPay:
		return TitlePaid
	}
	return s
}

// Title is a receivable or payable document. Creating one posts exactly one journal entry.
type Title struct {
	TitleID        string          `json:"titleID"`
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	Date           time.Time       `json:"date"`
	Value          decimal.Decimal `json:"value"`
	Status         TitleStatus     `json:"status"`
	MovementTypeID string          `json:"movementTypeID"`
	PartnerID      *string         `json:"partnerID,omitempty"`
	PaidAt         *time.Time      `json:"paidAt,omitempty"`
	MovementType   *MovementType   `json:"movementType,omitempty"`
	Partner        *Partner        `json:"partner,omitempty"`
	Journal        *JournalEntry   `json:"journal,omitempty"`
	AuditFields
}

// TitleFilter narrows title list queries.
type TitleFilter struct {
	ListOptions
	Status         *TitleStatus
	MovementTypeID string
	PartnerID      string
}
