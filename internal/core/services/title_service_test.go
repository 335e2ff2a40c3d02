package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/core/services"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TitleServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	now          time.Time
	titleRepo    *MockTitleRepository
	movementRepo *MockMovementTypeReader
	partnerRepo  *MockPartnerReader
	posting      *MockPostingEngine
	service      portssvc.TitleSvcFacade
	movement     *domain.MovementType
}

func TestTitleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TitleServiceTestSuite))
}

func (suite *TitleServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	suite.titleRepo = new(MockTitleRepository)
	suite.movementRepo = new(MockMovementTypeReader)
	suite.partnerRepo = new(MockPartnerReader)
	suite.posting = new(MockPostingEngine)
	suite.service = services.NewTitleService(suite.titleRepo, suite.movementRepo, suite.partnerRepo, suite.posting,
		services.WithTitleClock(func() time.Time { return suite.now }),
		services.WithTitleCodeGenerator(func(time.Time) (string, error) { return "TIT-20240315-ABC123", nil }),
	)
	suite.movement = &domain.MovementType{
		MovementTypeID:  "mt-1",
		Name:            "Sale",
		DebitAccountID:  "acc-d",
		CreditAccountID: "acc-c",
		Status:          domain.StatusActive,
	}
}

func (suite *TitleServiceTestSuite) storedTitle(status domain.TitleStatus) *domain.Title {
	return &domain.Title{
		TitleID:        "t-1",
		Code:           "TIT-1",
		Value:          decimal.RequireFromString("150.00"),
		Status:         status,
		MovementTypeID: suite.movement.MovementTypeID,
	}
}

func (suite *TitleServiceTestSuite) TestCreateTitle_PostsThroughEngine() {
	req := dto.CreateTitleRequest{Value: decimal.RequireFromString("150.00"), MovementID: "mt-1", Description: "Invoice 42"}
	entry := &domain.JournalEntry{JournalEntryID: "je-1"}

	suite.movementRepo.On("FindMovementTypeByID", suite.ctx, "mt-1").Return(suite.movement, nil).Once()
	suite.posting.On("PostTitle", suite.ctx, mock.MatchedBy(func(t domain.Title) bool {
		return t.Code == "TIT-20240315-ABC123" &&
			t.Status == domain.TitleActive &&
			t.Value.Equal(req.Value) &&
			t.Date.Equal(suite.now) &&
			t.CreatedBy == "user-1"
	}), *suite.movement).Return(entry, nil).Once()

	title, err := suite.service.CreateTitle(suite.ctx, allCaps, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("TIT-20240315-ABC123", title.Code)
	suite.Same(entry, title.Journal)
	suite.Equal(suite.movement, title.MovementType)
	suite.Nil(title.Partner)
	suite.movementRepo.AssertExpectations(suite.T())
	suite.posting.AssertExpectations(suite.T())
}

func (suite *TitleServiceTestSuite) TestCreateTitle_KeepsProvidedCodeAndPartner() {
	partnerID := "p-1"
	partner := &domain.Partner{PartnerID: partnerID, Name: "ACME"}
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	req := dto.CreateTitleRequest{Code: "INV-9", Value: decimal.NewFromInt(10), MovementID: "mt-1", PartnerID: &partnerID, Date: &date}

	suite.movementRepo.On("FindMovementTypeByID", suite.ctx, "mt-1").Return(suite.movement, nil).Once()
	suite.partnerRepo.On("FindPartnerByID", suite.ctx, partnerID).Return(partner, nil).Once()
	suite.posting.On("PostTitle", suite.ctx, mock.MatchedBy(func(t domain.Title) bool {
		return t.Code == "INV-9" && t.Date.Equal(date) && *t.PartnerID == partnerID
	}), *suite.movement).Return(&domain.JournalEntry{}, nil).Once()

	title, err := suite.service.CreateTitle(suite.ctx, allCaps, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(partner, title.Partner)
}

func (suite *TitleServiceTestSuite) TestCreateTitle_Forbidden() {
	req := dto.CreateTitleRequest{Value: decimal.NewFromInt(1), MovementID: "mt-1"}

	title, err := suite.service.CreateTitle(suite.ctx, readOnlyCaps, req, "user-1")

	suite.Nil(title)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.movementRepo.AssertNotCalled(suite.T(), "FindMovementTypeByID", mock.Anything, mock.Anything)
	suite.posting.AssertNotCalled(suite.T(), "PostTitle", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TitleServiceTestSuite) TestCreateTitle_InvalidRequest() {
	tests := []struct {
		name  string
		req   dto.CreateTitleRequest
		field string
	}{
		{"zero value", dto.CreateTitleRequest{Value: decimal.Zero, MovementID: "mt-1"}, "value"},
		{"negative value", dto.CreateTitleRequest{Value: decimal.NewFromInt(-5), MovementID: "mt-1"}, "value"},
		{"missing movement", dto.CreateTitleRequest{Value: decimal.NewFromInt(5)}, "movementId"},
		{"created paid", dto.CreateTitleRequest{Value: decimal.NewFromInt(5), MovementID: "mt-1", Status: "PAID"}, "status"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateTitle(suite.ctx, allCaps, tt.req, "user-1")
			suite.Require().ErrorIs(err, apperrors.ErrValidation)
			var ve *apperrors.ValidationError
			suite.Require().ErrorAs(err, &ve)
			suite.Equal(tt.field, ve.Fields[0].Field)
		})
	}
	suite.posting.AssertNotCalled(suite.T(), "PostTitle", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TitleServiceTestSuite) TestCreateTitle_InactiveMovementType() {
	inactive := *suite.movement
	inactive.Status = domain.StatusInactive
	suite.movementRepo.On("FindMovementTypeByID", suite.ctx, "mt-1").Return(&inactive, nil).Once()

	_, err := suite.service.CreateTitle(suite.ctx, allCaps, dto.CreateTitleRequest{Value: decimal.NewFromInt(5), MovementID: "mt-1"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.posting.AssertNotCalled(suite.T(), "PostTitle", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TitleServiceTestSuite) TestCreateTitle_PostingFailurePropagates() {
	suite.movementRepo.On("FindMovementTypeByID", suite.ctx, "mt-1").Return(suite.movement, nil).Once()
	suite.posting.On("PostTitle", suite.ctx, mock.Anything, *suite.movement).Return(nil, assert.AnError).Once()

	title, err := suite.service.CreateTitle(suite.ctx, allCaps, dto.CreateTitleRequest{Value: decimal.NewFromInt(5), MovementID: "mt-1"}, "user-1")

	suite.Nil(title)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *TitleServiceTestSuite) TestPayTitle_FromActive() {
	active := suite.storedTitle(domain.TitleActive)
	paid := suite.storedTitle(domain.TitlePaid)
	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(active, nil).Once()
	suite.titleRepo.On("TransitionTitleStatus", suite.ctx, "t-1", domain.TitleActive, domain.TitlePaid,
		mock.MatchedBy(func(p *time.Time) bool { return p != nil && p.Equal(suite.now) }),
		"user-1", suite.now).Return(nil).Once()
	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(paid, nil).Once()

	title, err := suite.service.PayTitle(suite.ctx, allCaps, "t-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TitlePaid, title.Status)
	suite.titleRepo.AssertExpectations(suite.T())
}

func (suite *TitleServiceTestSuite) TestInactivateTitle_FromActive() {
	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(suite.storedTitle(domain.TitleActive), nil).Once()
	suite.titleRepo.On("TransitionTitleStatus", suite.ctx, "t-1", domain.TitleActive, domain.TitleInactive,
		(*time.Time)(nil), "user-1", suite.now).Return(nil).Once()
	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(suite.storedTitle(domain.TitleInactive), nil).Once()

	title, err := suite.service.InactivateTitle(suite.ctx, allCaps, "t-1", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TitleInactive, title.Status)
	suite.titleRepo.AssertExpectations(suite.T())
}

func (suite *TitleServiceTestSuite) TestTerminalStatesRejectEveryTransition() {
	for _, status := range []domain.TitleStatus{domain.TitlePaid, domain.TitleInactive} {
		suite.Run(string(status), func() {
			repo := new(MockTitleRepository)
			repo.On("FindTitleByID", suite.ctx, "t-1").Return(suite.storedTitle(status), nil)
			svc := services.NewTitleService(repo, suite.movementRepo, suite.partnerRepo, suite.posting)

			_, err := svc.PayTitle(suite.ctx, allCaps, "t-1", "user-1")
			suite.ErrorIs(err, apperrors.ErrConflict)
			_, err = svc.InactivateTitle(suite.ctx, allCaps, "t-1", "user-1")
			suite.ErrorIs(err, apperrors.ErrConflict)
			desc := "changed"
			_, err = svc.UpdateTitle(suite.ctx, allCaps, "t-1", dto.UpdateTitleRequest{Description: &desc}, "user-1")
			suite.ErrorIs(err, apperrors.ErrConflict)

			repo.AssertNotCalled(suite.T(), "TransitionTitleStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(suite.T(), "UpdateTitle", mock.Anything, mock.Anything)
		})
	}
}

func (suite *TitleServiceTestSuite) TestDeleteTitle() {
	suite.Run("active title is removed with its journal", func() {
		repo := new(MockTitleRepository)
		repo.On("FindTitleByID", suite.ctx, "t-1").Return(suite.storedTitle(domain.TitleActive), nil).Once()
		repo.On("DeleteTitleWithJournal", suite.ctx, "t-1").Return(nil).Once()
		svc := services.NewTitleService(repo, suite.movementRepo, suite.partnerRepo, suite.posting)

		suite.NoError(svc.DeleteTitle(suite.ctx, allCaps, "t-1"))
		repo.AssertExpectations(suite.T())
	})
	suite.Run("paid title is kept", func() {
		repo := new(MockTitleRepository)
		repo.On("FindTitleByID", suite.ctx, "t-1").Return(suite.storedTitle(domain.TitlePaid), nil).Once()
		svc := services.NewTitleService(repo, suite.movementRepo, suite.partnerRepo, suite.posting)

		suite.ErrorIs(svc.DeleteTitle(suite.ctx, allCaps, "t-1"), apperrors.ErrConflict)
		repo.AssertNotCalled(suite.T(), "DeleteTitleWithJournal", mock.Anything, mock.Anything)
	})
	suite.Run("update capability is not enough", func() {
		caps := domain.NewCapabilities(domain.Permission{Resource: domain.ResourceTitle, Action: domain.ActionUpdate})
		suite.ErrorIs(suite.service.DeleteTitle(suite.ctx, caps, "t-1"), apperrors.ErrForbidden)
	})
}

func (suite *TitleServiceTestSuite) TestUpdateTitle_ValueChangeDoesNotRepost() {
	newValue := decimal.RequireFromString("200.00")
	updated := suite.storedTitle(domain.TitleActive)
	updated.Value = newValue

	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(suite.storedTitle(domain.TitleActive), nil).Once()
	suite.titleRepo.On("UpdateTitle", suite.ctx, mock.MatchedBy(func(t domain.Title) bool {
		return t.Value.Equal(newValue) && t.LastUpdatedBy == "user-1" && t.LastUpdatedAt.Equal(suite.now)
	})).Return(nil).Once()
	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(updated, nil).Once()

	title, err := suite.service.UpdateTitle(suite.ctx, allCaps, "t-1", dto.UpdateTitleRequest{Value: &newValue}, "user-1")

	suite.Require().NoError(err)
	suite.True(title.Value.Equal(newValue))
	suite.posting.AssertNotCalled(suite.T(), "PostTitle", mock.Anything, mock.Anything, mock.Anything)
	suite.titleRepo.AssertNotCalled(suite.T(), "SaveTitleWithJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TitleServiceTestSuite) TestUpdateTitle_ClearsPartner() {
	stored := suite.storedTitle(domain.TitleActive)
	partnerID := "p-1"
	stored.PartnerID = &partnerID
	empty := ""

	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(stored, nil).Once()
	suite.titleRepo.On("UpdateTitle", suite.ctx, mock.MatchedBy(func(t domain.Title) bool {
		return t.PartnerID == nil
	})).Return(nil).Once()
	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(suite.storedTitle(domain.TitleActive), nil).Once()

	_, err := suite.service.UpdateTitle(suite.ctx, allCaps, "t-1", dto.UpdateTitleRequest{PartnerID: &empty}, "user-1")

	suite.Require().NoError(err)
	suite.partnerRepo.AssertNotCalled(suite.T(), "FindPartnerByID", mock.Anything, mock.Anything)
	suite.titleRepo.AssertExpectations(suite.T())
}

func (suite *TitleServiceTestSuite) TestUpdateTitle_RejectsNonPositiveValue() {
	zero := decimal.Zero
	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(suite.storedTitle(domain.TitleActive), nil).Once()

	_, err := suite.service.UpdateTitle(suite.ctx, allCaps, "t-1", dto.UpdateTitleRequest{Value: &zero}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.titleRepo.AssertNotCalled(suite.T(), "UpdateTitle", mock.Anything, mock.Anything)
}

func (suite *TitleServiceTestSuite) TestPayTitle_LostRaceIsConflict() {
	suite.titleRepo.On("FindTitleByID", suite.ctx, "t-1").Return(suite.storedTitle(domain.TitleActive), nil).Once()
	suite.titleRepo.On("TransitionTitleStatus", suite.ctx, "t-1", domain.TitleActive, domain.TitlePaid,
		mock.Anything, "user-1", suite.now).Return(apperrors.ErrConflict).Once()

	_, err := suite.service.PayTitle(suite.ctx, allCaps, "t-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TitleServiceTestSuite) TestGetTitleByID_NotFound() {
	suite.titleRepo.On("FindTitleByID", suite.ctx, "missing").Return(nil, apperrors.NewNotFoundError("title", "missing")).Once()

	_, err := suite.service.GetTitleByID(suite.ctx, readOnlyCaps, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TitleServiceTestSuite) TestListTitles_BuildsPagination() {
	params := dto.ListTitlesParams{ListParams: dto.ListParams{Page: 2, Limit: 5}, Status: "ACTIVE"}
	titles := []domain.Title{*suite.storedTitle(domain.TitleActive)}
	suite.titleRepo.On("ListTitles", suite.ctx, mock.MatchedBy(func(f domain.TitleFilter) bool {
		return f.Page == 2 && f.Limit == 5 && f.Status != nil && *f.Status == domain.TitleActive
	})).Return(titles, 11, nil).Once()

	resp, err := suite.service.ListTitles(suite.ctx, readOnlyCaps, params)

	suite.Require().NoError(err)
	suite.Len(resp.Data, 1)
	suite.Equal(11, resp.Pagination.Total)
	suite.Equal(3, resp.Pagination.TotalPages)
}
