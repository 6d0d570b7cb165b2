package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/core/services"
	"github.com/fleetops/car_rental_app/internal/dto"
)

type ReceiptServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo *MockReceiptRepository
	mockJournalRepo *MockJournalRepository
	mockDriverRepo  *MockDriverRepository
	mockAuthRepo    *MockAuthorizationRepository
	mockJournalSvc  *MockJournalService
	clock           fixedClock
	service         portssvc.ReceiptSvcFacade
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockDriverRepo = new(MockDriverRepository)
	suite.mockAuthRepo = new(MockAuthorizationRepository)
	suite.mockJournalSvc = new(MockJournalService)
	suite.clock = fixedClock{now: time.Date(2025, 1, 11, 10, 0, 0, 0, time.UTC)}
	suite.service = services.NewReceiptService(
		suite.mockReceiptRepo,
		suite.mockJournalRepo,
		suite.mockDriverRepo,
		suite.mockAuthRepo,
		suite.mockJournalSvc,
		suite.clock,
	)
}

func (suite *ReceiptServiceTestSuite) entryFor() (*domain.JournalEntry, []domain.JournalLine) {
	entry := &domain.JournalEntry{EntryID: uuid.NewString()}
	lines := []domain.JournalLine{{EntryID: entry.EntryID, LineNo: 1}, {EntryID: entry.EntryID, LineNo: 2}}
	return entry, lines
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_Success() {
	ctx := context.Background()
	driver := &domain.Driver{DriverID: uuid.NewString(), Name: "Ali Hassan"}
	req := dto.CreateReceiptRequest{Amount: decimal.RequireFromString("250.00"), DriverName: "Ali Hassan"}
	entry, lines := suite.entryFor()

	var savedReceipt domain.CashReceipt
	suite.mockDriverRepo.On("FindDriverByName", ctx, "Ali Hassan").Return(driver, nil).Once()
	suite.mockJournalSvc.On("BuildReceiptEntry", ctx, mock.AnythingOfType("domain.CashReceipt")).Return(entry, lines, nil).Once()
	suite.mockReceiptRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockReceiptRepo.On("SaveReceiptInTx", ctx, mock.Anything, mock.AnythingOfType("domain.CashReceipt")).
		Run(func(args mock.Arguments) { savedReceipt = args.Get(2).(domain.CashReceipt) }).Return(nil).Once()
	suite.mockJournalRepo.On("SaveEntryInTx", ctx, mock.Anything, *entry, lines).Return(nil).Once()
	suite.mockReceiptRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockReceiptRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)
	suite.Equal(driver.DriverID, receipt.DriverID)
	suite.Equal(entry.EntryID, receipt.EntryID)
	suite.Equal(entry.EntryID, savedReceipt.EntryID)
	suite.Equal(suite.clock.now, receipt.ReceiptDate)
	suite.Equal("Cash received from Ali Hassan", receipt.Description)

	suite.mockReceiptRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_DefaultDescriptionNamesAuthorization() {
	ctx := context.Background()
	authID := uuid.NewString()
	auth := &domain.Authorization{AuthorizationID: authID}
	req := dto.CreateReceiptRequest{Amount: decimal.RequireFromString("100.00"), AuthorizationID: authID}
	entry, lines := suite.entryFor()

	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, authID).Return(auth, nil).Once()
	suite.mockJournalSvc.On("BuildReceiptEntry", ctx, mock.AnythingOfType("domain.CashReceipt")).Return(entry, lines, nil).Once()
	suite.mockReceiptRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockReceiptRepo.On("SaveReceiptInTx", ctx, mock.Anything, mock.AnythingOfType("domain.CashReceipt")).Return(nil).Once()
	suite.mockJournalRepo.On("SaveEntryInTx", ctx, mock.Anything, *entry, lines).Return(nil).Once()
	suite.mockReceiptRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockReceiptRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().NoError(err)
	suite.Contains(receipt.Description, authID)
	suite.Equal(authID, receipt.RefAuthorizationID)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_NonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{Amount: decimal.Zero})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_UnknownDriverID() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{Amount: decimal.RequireFromString("10.00"), DriverID: "nope"}

	suite.mockDriverRepo.On("FindDriverByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateReceipt(ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_UnregisteredDriverNameAllowed() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{Amount: decimal.RequireFromString("10.00"), DriverName: "Walk-in Customer"}
	entry, lines := suite.entryFor()

	var built domain.CashReceipt
	suite.mockDriverRepo.On("FindDriverByName", ctx, "Walk-in Customer").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockJournalSvc.On("BuildReceiptEntry", ctx, mock.AnythingOfType("domain.CashReceipt")).
		Run(func(args mock.Arguments) { built = args.Get(1).(domain.CashReceipt) }).Return(entry, lines, nil).Once()
	suite.mockReceiptRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockReceiptRepo.On("SaveReceiptInTx", ctx, mock.Anything, mock.AnythingOfType("domain.CashReceipt")).Return(nil).Once()
	suite.mockJournalRepo.On("SaveEntryInTx", ctx, mock.Anything, *entry, lines).Return(nil).Once()
	suite.mockReceiptRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockReceiptRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().NoError(err)
	suite.Empty(receipt.DriverID)
	suite.Equal("Walk-in Customer", built.DriverName)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_UnknownAuthorization() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{Amount: decimal.RequireFromString("10.00"), AuthorizationID: "nope"}

	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateReceipt(ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_MissingCashAccountRefuses() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{Amount: decimal.RequireFromString("10.00")}

	suite.mockJournalSvc.On("BuildReceiptEntry", ctx, mock.AnythingOfType("domain.CashReceipt")).Return(nil, nil, nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(receipt)
	var appErr *apperrors.AppError
	suite.ErrorAs(err, &appErr)
	// Nothing was persisted: the receipt never exists without its entry.
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_EntrySaveFailureRollsBack() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{Amount: decimal.RequireFromString("10.00")}
	entry, lines := suite.entryFor()

	suite.mockJournalSvc.On("BuildReceiptEntry", ctx, mock.AnythingOfType("domain.CashReceipt")).Return(entry, lines, nil).Once()
	suite.mockReceiptRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockReceiptRepo.On("SaveReceiptInTx", ctx, mock.Anything, mock.AnythingOfType("domain.CashReceipt")).Return(nil).Once()
	suite.mockJournalRepo.On("SaveEntryInTx", ctx, mock.Anything, *entry, lines).Return(assert.AnError).Once()
	suite.mockReceiptRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, req)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockReceiptRepo.AssertCalled(suite.T(), "Rollback", ctx, mock.Anything)
}

func TestReceiptService(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
