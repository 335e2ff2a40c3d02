package dto

import "github.com/SscSPs/contabil_ledger/internal/utils/pagination"

// PaginationMeta is the page metadata attached to list responses.
type PaginationMeta = pagination.Meta

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
