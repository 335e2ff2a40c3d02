package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postingFixture() (domain.Title, domain.MovementType) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	title := domain.Title{
		TitleID:        "t-1",
		Code:           "TIT-1",
		Date:           time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		Value:          decimal.RequireFromString("150.00"),
		Status:         domain.TitleActive,
		MovementTypeID: "mt-1",
		AuditFields:    domain.AuditFields{CreatedAt: created, CreatedBy: "user-1"},
	}
	movement := domain.MovementType{MovementTypeID: "mt-1", DebitAccountID: "acc-d", CreditAccountID: "acc-c"}
	return title, movement
}

func TestPostingEngine_BuildEntry(t *testing.T) {
	engine := services.NewPostingEngine(new(MockAccountRepository), new(MockTitleRepository))
	title, movement := postingFixture()

	entry, err := engine.BuildEntry(title, movement)

	require.NoError(t, err)
	assert.Equal(t, "t-1", entry.TitleID)
	assert.Equal(t, domain.OriginTitle, entry.OriginType)
	assert.True(t, entry.EntryDate.Equal(title.Date))
	assert.Equal(t, "Title TIT-1", entry.Description)
	require.Len(t, entry.Lines, 2)

	debit, credit := entry.Lines[0], entry.Lines[1]
	assert.Equal(t, domain.Debit, debit.Type)
	assert.Equal(t, "acc-d", debit.AccountID)
	assert.Equal(t, domain.Credit, credit.Type)
	assert.Equal(t, "acc-c", credit.AccountID)
	for _, l := range entry.Lines {
		assert.True(t, l.Amount.Equal(title.Value))
		assert.Equal(t, entry.JournalEntryID, l.JournalEntryID)
	}
	assert.NotEqual(t, debit.JournalLineID, credit.JournalLineID)
	assert.True(t, entry.IsBalanced())
}

func TestPostingEngine_BuildEntry_UsesDescription(t *testing.T) {
	engine := services.NewPostingEngine(new(MockAccountRepository), new(MockTitleRepository))
	title, movement := postingFixture()
	title.Description = "Consulting March"

	entry, err := engine.BuildEntry(title, movement)

	require.NoError(t, err)
	assert.Equal(t, "Consulting March", entry.Description)
}

func TestPostingEngine_BuildEntry_Rejects(t *testing.T) {
	engine := services.NewPostingEngine(new(MockAccountRepository), new(MockTitleRepository))

	tests := []struct {
		name   string
		mutate func(*domain.Title, *domain.MovementType)
		fields []string
	}{
		{
			name:   "zero value",
			mutate: func(t *domain.Title, _ *domain.MovementType) { t.Value = decimal.Zero },
			fields: []string{"value"},
		},
		{
			name:   "negative value",
			mutate: func(t *domain.Title, _ *domain.MovementType) { t.Value = decimal.NewFromInt(-1) },
			fields: []string{"value"},
		},
		{
			name:   "same account on both sides",
			mutate: func(_ *domain.Title, m *domain.MovementType) { m.CreditAccountID = m.DebitAccountID },
			fields: []string{"movementId"},
		},
		{
			name: "accounts missing",
			mutate: func(_ *domain.Title, m *domain.MovementType) {
				m.DebitAccountID = ""
				m.CreditAccountID = ""
			},
			fields: []string{"debitAccountId", "creditAccountId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, movement := postingFixture()
			tt.mutate(&title, &movement)

			entry, err := engine.BuildEntry(title, movement)

			assert.Nil(t, entry)
			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			var got []string
			for _, f := range ve.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestPostingEngine_PostTitle(t *testing.T) {
	ctx := context.Background()
	title, movement := postingFixture()
	postable := map[string]domain.Account{
		"acc-d": {AccountID: "acc-d", Code: "1.1.1", AcceptsPosting: true, Status: domain.StatusActive},
		"acc-c": {AccountID: "acc-c", Code: "2.1.1", AcceptsPosting: true, Status: domain.StatusActive},
	}

	t.Run("persists title and entry together", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		titles := new(MockTitleRepository)
		accounts.On("FindAccountsByIDs", ctx, []string{"acc-d", "acc-c"}).Return(postable, nil).Once()
		titles.On("SaveTitleWithJournal", ctx, title, mock.MatchedBy(func(e domain.JournalEntry) bool {
			return e.TitleID == title.TitleID && len(e.Lines) == 2 && e.Lines[0].Account != nil
		})).Return(nil).Once()

		entry, err := services.NewPostingEngine(accounts, titles).PostTitle(ctx, title, movement)

		require.NoError(t, err)
		assert.Equal(t, "1.1.1", entry.Lines[0].Account.Code)
		assert.Equal(t, "2.1.1", entry.Lines[1].Account.Code)
		accounts.AssertExpectations(t)
		titles.AssertExpectations(t)
	})

	t.Run("synthetic account is rejected", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		titles := new(MockTitleRepository)
		synthetic := map[string]domain.Account{
			"acc-d": postable["acc-d"],
			"acc-c": {AccountID: "acc-c", Code: "2.1", AcceptsPosting: false, Status: domain.StatusActive},
		}
		accounts.On("FindAccountsByIDs", ctx, mock.Anything).Return(synthetic, nil).Once()

		_, err := services.NewPostingEngine(accounts, titles).PostTitle(ctx, title, movement)

		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "creditAccountId", ve.Fields[0].Field)
		titles.AssertNotCalled(t, "SaveTitleWithJournal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("inactive account is rejected", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		titles := new(MockTitleRepository)
		inactive := map[string]domain.Account{
			"acc-d": {AccountID: "acc-d", Code: "1.1.1", AcceptsPosting: true, Status: domain.StatusInactive},
			"acc-c": postable["acc-c"],
		}
		accounts.On("FindAccountsByIDs", ctx, mock.Anything).Return(inactive, nil).Once()

		_, err := services.NewPostingEngine(accounts, titles).PostTitle(ctx, title, movement)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		titles.AssertNotCalled(t, "SaveTitleWithJournal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing account", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		titles := new(MockTitleRepository)
		accounts.On("FindAccountsByIDs", ctx, mock.Anything).Return(map[string]domain.Account{"acc-d": postable["acc-d"]}, nil).Once()

		_, err := services.NewPostingEngine(accounts, titles).PostTitle(ctx, title, movement)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		titles.AssertNotCalled(t, "SaveTitleWithJournal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		accounts := new(MockAccountRepository)
		titles := new(MockTitleRepository)
		accounts.On("FindAccountsByIDs", ctx, mock.Anything).Return(postable, nil).Once()
		titles.On("SaveTitleWithJournal", ctx, title, mock.Anything).Return(assert.AnError).Once()

		entry, err := services.NewPostingEngine(accounts, titles).PostTitle(ctx, title, movement)

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
