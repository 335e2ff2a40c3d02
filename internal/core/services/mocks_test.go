package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Int(1), args.Error(2)
}

func (m *MockAccountRepository) ListAllAccounts(ctx context.Context, status *domain.Status, acceptsPosting *bool) ([]domain.Account, error) {
	args := m.Called(ctx, status, acceptsPosting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListChildCodes(ctx context.Context, parentID *string) ([]string, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountRepository) AccountUsage(ctx context.Context, accountID string) (int, int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// MockTitleRepository is a mock type for the TitleRepositoryFacade interface
type MockTitleRepository struct {
	mock.Mock
}

func (m *MockTitleRepository) FindTitleByID(ctx context.Context, titleID string) (*domain.Title, error) {
	args := m.Called(ctx, titleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Title), args.Error(1)
}

func (m *MockTitleRepository) ListTitles(ctx context.Context, filter domain.TitleFilter) ([]domain.Title, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Title), args.Int(1), args.Error(2)
}

func (m *MockTitleRepository) SaveTitleWithJournal(ctx context.Context, title domain.Title, entry domain.JournalEntry) error {
	args := m.Called(ctx, title, entry)
	return args.Error(0)
}

func (m *MockTitleRepository) UpdateTitle(ctx context.Context, title domain.Title) error {
	args := m.Called(ctx, title)
	return args.Error(0)
}

func (m *MockTitleRepository) TransitionTitleStatus(ctx context.Context, titleID string, from, to domain.TitleStatus, paidAt *time.Time, userID string, at time.Time) error {
	args := m.Called(ctx, titleID, from, to, paidAt, userID, at)
	return args.Error(0)
}

func (m *MockTitleRepository) DeleteTitleWithJournal(ctx context.Context, titleID string) error {
	args := m.Called(ctx, titleID)
	return args.Error(0)
}

// MockMovementTypeReader is a mock type for the MovementTypeReader interface
type MockMovementTypeReader struct {
	mock.Mock
}

func (m *MockMovementTypeReader) FindMovementTypeByID(ctx context.Context, movementTypeID string) (*domain.MovementType, error) {
	args := m.Called(ctx, movementTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovementType), args.Error(1)
}

func (m *MockMovementTypeReader) ListMovementTypes(ctx context.Context, filter domain.MovementTypeFilter) ([]domain.MovementType, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.MovementType), args.Int(1), args.Error(2)
}

func (m *MockMovementTypeReader) CountTitlesByMovementType(ctx context.Context, movementTypeID string) (int, error) {
	args := m.Called(ctx, movementTypeID)
	return args.Int(0), args.Error(1)
}

// MockPartnerReader is a mock type for the PartnerReader interface
type MockPartnerReader struct {
	mock.Mock
}

func (m *MockPartnerReader) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerReader) ListPartners(ctx context.Context, filter domain.PartnerFilter) ([]domain.Partner, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Partner), args.Int(1), args.Error(2)
}

// MockPostingEngine is a mock type for the PostingEngine interface
type MockPostingEngine struct {
	mock.Mock
}

func (m *MockPostingEngine) BuildEntry(title domain.Title, movement domain.MovementType) (*domain.JournalEntry, error) {
	args := m.Called(title, movement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockPostingEngine) PostTitle(ctx context.Context, title domain.Title, movement domain.MovementType) (*domain.JournalEntry, error) {
	args := m.Called(ctx, title, movement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// allCaps grants every action on every resource.
var allCaps = domain.NewCapabilities(domain.Permission{Resource: domain.ResourceAll, Action: domain.ActionManage})

// readOnlyCaps grants read on every resource.
var readOnlyCaps = domain.NewCapabilities(domain.Permission{Resource: domain.ResourceAll, Action: domain.ActionRead})
