package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, caps domain.Capabilities, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, caps, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, caps domain.Capabilities, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error) {
	args := m.Called(ctx, caps, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAccountsResponse), args.Error(1)
}

func (m *MockAccountService) GetAccountTree(ctx context.Context, caps domain.Capabilities) ([]*domain.AccountNode, error) {
	args := m.Called(ctx, caps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AccountNode), args.Error(1)
}

func (m *MockAccountService) NextAccountCode(ctx context.Context, caps domain.Capabilities, parentID *string) (*dto.NextCodeResponse, error) {
	args := m.Called(ctx, caps, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.NextCodeResponse), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, caps domain.Capabilities, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, caps, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, caps domain.Capabilities, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, caps, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) InactivateAccount(ctx context.Context, caps domain.Capabilities, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, caps, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, caps domain.Capabilities, accountID string) error {
	return m.Called(ctx, caps, accountID).Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalEntryByID(ctx context.Context, caps domain.Capabilities, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, caps, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournalEntries(ctx context.Context, caps domain.Capabilities, params dto.CursorParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, caps, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

func (m *MockJournalService) ListAccountLedger(ctx context.Context, caps domain.Capabilities, accountID string, params dto.CursorParams) (*dto.ListLedgerResponse, error) {
	args := m.Called(ctx, caps, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerResponse), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock TitleService ---
type MockTitleService struct {
	mock.Mock
}

func (m *MockTitleService) titleResult(args mock.Arguments) (*domain.Title, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Title), args.Error(1)
}

func (m *MockTitleService) GetTitleByID(ctx context.Context, caps domain.Capabilities, titleID string) (*domain.Title, error) {
	return m.titleResult(m.Called(ctx, caps, titleID))
}

func (m *MockTitleService) ListTitles(ctx context.Context, caps domain.Capabilities, params dto.ListTitlesParams) (*dto.ListTitlesResponse, error) {
	args := m.Called(ctx, caps, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTitlesResponse), args.Error(1)
}

func (m *MockTitleService) CreateTitle(ctx context.Context, caps domain.Capabilities, req dto.CreateTitleRequest, userID string) (*domain.Title, error) {
	return m.titleResult(m.Called(ctx, caps, req, userID))
}

func (m *MockTitleService) UpdateTitle(ctx context.Context, caps domain.Capabilities, titleID string, req dto.UpdateTitleRequest, userID string) (*domain.Title, error) {
	return m.titleResult(m.Called(ctx, caps, titleID, req, userID))
}

func (m *MockTitleService) InactivateTitle(ctx context.Context, caps domain.Capabilities, titleID string, userID string) (*domain.Title, error) {
	return m.titleResult(m.Called(ctx, caps, titleID, userID))
}

func (m *MockTitleService) PayTitle(ctx context.Context, caps domain.Capabilities, titleID string, userID string) (*domain.Title, error) {
	return m.titleResult(m.Called(ctx, caps, titleID, userID))
}

func (m *MockTitleService) DeleteTitle(ctx context.Context, caps domain.Capabilities, titleID string) error {
	return m.Called(ctx, caps, titleID).Error(0)
}

var _ portssvc.TitleSvcFacade = (*MockTitleService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetTrialBalance(ctx context.Context, caps domain.Capabilities, asOf time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, caps, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

func (m *MockReportingService) GetBalanceTree(ctx context.Context, caps domain.Capabilities, asOf time.Time) ([]*domain.AccountNode, error) {
	args := m.Called(ctx, caps, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AccountNode), args.Error(1)
}

func (m *MockReportingService) GetIncomeStatement(ctx context.Context, caps domain.Capabilities, from *time.Time, to time.Time) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, caps, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

func (m *MockReportingService) GetBalanceSheet(ctx context.Context, caps domain.Capabilities, asOf time.Time) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, caps, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock PermissionService ---
type MockPermissionService struct {
	mock.Mock
}

func (m *MockPermissionService) CapabilitiesForUser(ctx context.Context, userID string) (domain.Capabilities, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Capabilities), args.Error(1)
}

var _ portssvc.PermissionSvc = (*MockPermissionService)(nil)

// --- Mock EventSink ---
type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) IsInitialized() bool {
	return m.Called().Bool(0)
}

func (m *MockEventSink) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// eventsNamed returns the properties of every enqueued event called name.
func (m *MockEventSink) eventsNamed(name string) []map[string]any {
	var out []map[string]any
	for _, call := range m.Calls {
		if call.Method == "Enqueue" && call.Arguments.String(1) == name {
			out = append(out, call.Arguments.Get(2).(map[string]any))
		}
	}
	return out
}

var _ middleware.EventSink = (*MockEventSink)(nil)
