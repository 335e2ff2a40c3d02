package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *Store
	cash     domain.Account
	revenue  domain.Account
	movement domain.MovementType
	base     time.Time
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewStore()
	s.base = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	s.cash = domain.Account{AccountID: "acc-cash", Code: "1", Name: "Cash", Level: 1, AcceptsPosting: true, Status: domain.StatusActive}
	s.revenue = domain.Account{AccountID: "acc-rev", Code: "2", Name: "Revenue", Level: 1, AcceptsPosting: true, Status: domain.StatusActive}
	s.Require().NoError(s.store.SaveAccount(s.ctx, s.cash))
	s.Require().NoError(s.store.SaveAccount(s.ctx, s.revenue))

	s.movement = domain.MovementType{MovementTypeID: "mt-1", Name: "Sale", DebitAccountID: s.cash.AccountID, CreditAccountID: s.revenue.AccountID, Status: domain.StatusActive}
	s.Require().NoError(s.store.SaveMovementType(s.ctx, s.movement))
}

func (s *StoreTestSuite) title(id, code string, value int64, date time.Time) (domain.Title, domain.JournalEntry) {
	amount := decimal.NewFromInt(value)
	t := domain.Title{
		TitleID: id, Code: code, Date: date, Value: amount, Status: domain.TitleActive,
		MovementTypeID: s.movement.MovementTypeID,
		AuditFields:    domain.AuditFields{CreatedAt: date, LastUpdatedAt: date},
	}
	e := domain.JournalEntry{
		JournalEntryID: "je-" + id, TitleID: id, EntryDate: date, OriginType: domain.OriginTitle, CreatedAt: date,
		Lines: []domain.JournalLine{
			{JournalLineID: "jl-d-" + id, AccountID: s.cash.AccountID, Type: domain.Debit, Amount: amount, CreatedAt: date},
			{JournalLineID: "jl-c-" + id, AccountID: s.revenue.AccountID, Type: domain.Credit, Amount: amount, CreatedAt: date},
		},
	}
	return t, e
}

func (s *StoreTestSuite) TestSaveTitleWithJournal_RollsBackWhenLineFails() {
	t, e := s.title("t-1", "TIT-1", 150, s.base)
	e.Lines[1].AccountID = "missing-account"

	err := s.store.SaveTitleWithJournal(s.ctx, t, e)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.store.FindTitleByID(s.ctx, "t-1")
	s.ErrorIs(err, apperrors.ErrNotFound, "no title may survive a failed posting")
	_, err = s.store.FindJournalEntryByID(s.ctx, "je-t-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestSaveTitleWithJournal_RejectsUnbalancedEntry() {
	t, e := s.title("t-1", "TIT-1", 150, s.base)
	e.Lines[1].Amount = decimal.NewFromInt(149)

	err := s.store.SaveTitleWithJournal(s.ctx, t, e)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.store.FindTitleByID(s.ctx, "t-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestSaveTitleWithJournal_DuplicateCode() {
	t1, e1 := s.title("t-1", "TIT-1", 10, s.base)
	s.Require().NoError(s.store.SaveTitleWithJournal(s.ctx, t1, e1))

	t2, e2 := s.title("t-2", "tit-1", 20, s.base)
	err := s.store.SaveTitleWithJournal(s.ctx, t2, e2)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *StoreTestSuite) TestFindTitleByID_Hydrated() {
	t, e := s.title("t-1", "TIT-1", 150, s.base)
	s.Require().NoError(s.store.SaveTitleWithJournal(s.ctx, t, e))

	got, err := s.store.FindTitleByID(s.ctx, "t-1")
	s.Require().NoError(err)
	s.Require().NotNil(got.MovementType)
	s.Equal("Cash", got.MovementType.DebitAccount.Name)
	s.Require().NotNil(got.Journal)
	s.Len(got.Journal.Lines, 2)
	s.Equal("1", got.Journal.Lines[0].Account.Code)
}

func (s *StoreTestSuite) TestTransitionTitleStatus_OnlyFromExpectedState() {
	t, e := s.title("t-1", "TIT-1", 150, s.base)
	s.Require().NoError(s.store.SaveTitleWithJournal(s.ctx, t, e))

	paidAt := s.base.Add(time.Hour)
	s.Require().NoError(s.store.TransitionTitleStatus(s.ctx, "t-1", domain.TitleActive, domain.TitlePaid, &paidAt, "u", paidAt))

	err := s.store.TransitionTitleStatus(s.ctx, "t-1", domain.TitleActive, domain.TitleInactive, nil, "u", paidAt)
	s.ErrorIs(err, apperrors.ErrConflict)

	err = s.store.UpdateTitle(s.ctx, t)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *StoreTestSuite) TestDeleteTitleWithJournal_RemovesEntry() {
	t, e := s.title("t-1", "TIT-1", 150, s.base)
	s.Require().NoError(s.store.SaveTitleWithJournal(s.ctx, t, e))

	s.Require().NoError(s.store.DeleteTitleWithJournal(s.ctx, "t-1"))
	_, err := s.store.FindJournalEntryByID(s.ctx, "je-t-1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	children, lines, err := s.store.AccountUsage(s.ctx, s.cash.AccountID)
	s.Require().NoError(err)
	s.Zero(children)
	s.Zero(lines)
}

func (s *StoreTestSuite) TestListTitles_PagingAndFilters() {
	for i := 0; i < 5; i++ {
		t, e := s.title(fmt.Sprintf("t-%d", i), fmt.Sprintf("TIT-%d", i), int64(10*(i+1)), s.base.AddDate(0, 0, i))
		s.Require().NoError(s.store.SaveTitleWithJournal(s.ctx, t, e))
	}

	opts := domain.ListOptions{Page: 2, Limit: 2}.Normalize()
	page, total, err := s.store.ListTitles(s.ctx, domain.TitleFilter{ListOptions: opts})
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Require().Len(page, 2)
	s.Equal("TIT-2", page[0].Code)
	s.Equal("TIT-1", page[1].Code)
	s.NotNil(page[0].Journal)

	all := domain.ListOptions{Limit: domain.AllRecords, SortBy: "value", SortOrder: domain.SortAsc}.Normalize()
	page, total, err = s.store.ListTitles(s.ctx, domain.TitleFilter{ListOptions: all})
	s.Require().NoError(err)
	s.Equal(5, total)
	s.Len(page, 5)
	s.Equal("TIT-0", page[0].Code)

	to := s.base.AddDate(0, 0, 1)
	ranged := domain.ListOptions{Limit: 10, DateTo: &to, Search: "tit-"}.Normalize()
	page, total, err = s.store.ListTitles(s.ctx, domain.TitleFilter{ListOptions: ranged})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(page, 2)
}

func (s *StoreTestSuite) TestListJournalEntries_Cursor() {
	for i := 0; i < 5; i++ {
		t, e := s.title(fmt.Sprintf("t-%d", i), fmt.Sprintf("TIT-%d", i), 10, s.base.AddDate(0, 0, i))
		s.Require().NoError(s.store.SaveTitleWithJournal(s.ctx, t, e))
	}

	var seen []string
	var token *string
	for pages := 0; pages < 10; pages++ {
		entries, next, err := s.store.ListJournalEntries(s.ctx, 2, token)
		s.Require().NoError(err)
		for _, e := range entries {
			seen = append(seen, e.TitleID)
		}
		if next == nil {
			break
		}
		token = next
	}
	s.Equal([]string{"t-4", "t-3", "t-2", "t-1", "t-0"}, seen)

	bad := "%%%"
	_, _, err := s.store.ListJournalEntries(s.ctx, 2, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *StoreTestSuite) TestGetAccountTotals_AsOf() {
	t1, e1 := s.title("t-1", "TIT-1", 100, s.base)
	t2, e2 := s.title("t-2", "TIT-2", 50, s.base.AddDate(0, 1, 0))
	s.Require().NoError(s.store.SaveTitleWithJournal(s.ctx, t1, e1))
	s.Require().NoError(s.store.SaveTitleWithJournal(s.ctx, t2, e2))

	totals, err := s.store.GetAccountTotals(s.ctx, s.base.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.True(totals[s.cash.AccountID].Balance.Equal(decimal.NewFromInt(100)))
	s.True(totals[s.revenue.AccountID].Balance.Equal(decimal.NewFromInt(-100)))

	totals, err = s.store.GetAccountTotals(s.ctx, s.base.AddDate(1, 0, 0))
	s.Require().NoError(err)
	s.True(totals[s.cash.AccountID].TotalDebit.Equal(decimal.NewFromInt(150)))
}

func (s *StoreTestSuite) TestDeleteGuards() {
	t, e := s.title("t-1", "TIT-1", 10, s.base)
	s.Require().NoError(s.store.SaveTitleWithJournal(s.ctx, t, e))

	s.ErrorIs(s.store.DeleteMovementType(s.ctx, s.movement.MovementTypeID), apperrors.ErrConflict)
	s.ErrorIs(s.store.DeleteAccount(s.ctx, s.cash.AccountID), apperrors.ErrConflict)
}

func TestSeededRoles(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for name, check := range map[string]func(domain.Capabilities) bool{
		"ADMIN": func(c domain.Capabilities) bool { return c.Can(domain.ActionDelete, domain.ResourceAccount) },
		"ACCOUNTANT": func(c domain.Capabilities) bool {
			return c.Can(domain.ActionUpdate, domain.ResourceTitle) && !c.Can(domain.ActionDelete, domain.ResourceAccount)
		},
		"VIEWER": func(c domain.Capabilities) bool {
			return c.Can(domain.ActionRead, domain.ResourceTitle) && !c.Can(domain.ActionCreate, domain.ResourceTitle)
		},
	} {
		t.Run(name, func(t *testing.T) {
			role, err := store.FindRoleByName(ctx, name)
			require.NoError(t, err)
			perms, err := store.FindPermissionsByRoleID(ctx, role.RoleID)
			require.NoError(t, err)
			assert.True(t, check(domain.NewCapabilities(perms...)))
		})
	}
}
