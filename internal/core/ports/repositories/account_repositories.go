package repositories

import (
	"context"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves several accounts keyed by id. Missing ids are simply absent.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns one page of accounts matching the filter and the total match count.
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, int, error)

	// ListAllAccounts returns every account, optionally narrowed by status and posting flag, for tree construction.
	ListAllAccounts(ctx context.Context, status *domain.Status, acceptsPosting *bool) ([]domain.Account, error)

	// ListChildCodes returns the codes of the direct children of parentID (top-level accounts when parentID is nil).
	ListChildCodes(ctx context.Context, parentID *string) ([]string, error)

	// AccountUsage reports how many child accounts and journal lines reference the account.
	AccountUsage(ctx context.Context, accountID string) (children int, lines int, err error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
