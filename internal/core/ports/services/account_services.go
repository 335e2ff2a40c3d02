package services

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, caps domain.Capabilities, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a page of accounts matching the filter.
	ListAccounts(ctx context.Context, caps domain.Capabilities, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error)

	// GetAccountTree returns the full chart of accounts as a tree, without balances.
	GetAccountTree(ctx context.Context, caps domain.Capabilities) ([]*domain.AccountNode, error)

	// NextAccountCode proposes the code the next child of parentID (or the next root) would get.
	NextAccountCode(ctx context.Context, caps domain.Capabilities, parentID *string) (*dto.NextCodeResponse, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount persists a new account, generating its code when none is given.
	CreateAccount(ctx context.Context, caps domain.Capabilities, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, caps domain.Capabilities, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// InactivateAccount marks an account as inactive.
	InactivateAccount(ctx context.Context, caps domain.Capabilities, accountID string, userID string) (*domain.Account, error)

	// DeleteAccount removes an account that has no children and no journal lines.
	DeleteAccount(ctx context.Context, caps domain.Capabilities, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
