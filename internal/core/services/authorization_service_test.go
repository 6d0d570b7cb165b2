package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/core/services"
	"github.com/fleetops/car_rental_app/internal/dto"
)

type AuthorizationServiceTestSuite struct {
	suite.Suite
	mockAuthRepo    *MockAuthorizationRepository
	mockCarRepo     *MockCarRepository
	mockDriverRepo  *MockDriverRepository
	mockJournalRepo *MockJournalRepository
	mockJournalSvc  *MockJournalService
	clock           fixedClock
	service         portssvc.AuthorizationSvcFacade
}

func (suite *AuthorizationServiceTestSuite) SetupTest() {
	suite.mockAuthRepo = new(MockAuthorizationRepository)
	suite.mockCarRepo = new(MockCarRepository)
	suite.mockDriverRepo = new(MockDriverRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockJournalSvc = new(MockJournalService)
	// 2025-01-08 is a Wednesday; the billing boundary is Friday 2025-01-10.
	suite.clock = fixedClock{now: time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC)}
	suite.service = services.NewAuthorizationService(
		suite.mockAuthRepo,
		suite.mockCarRepo,
		suite.mockDriverRepo,
		suite.mockJournalRepo,
		suite.mockJournalSvc,
		suite.clock,
	)
}

func (suite *AuthorizationServiceTestSuite) availableCar() *domain.Car {
	return &domain.Car{
		CarID:     uuid.NewString(),
		Plate:     "ABC-123",
		Model:     "Corolla",
		CarType:   "Sedan",
		DailyRent: decimal.RequireFromString("50.00"),
		Status:    domain.CarAvailable,
	}
}

func (suite *AuthorizationServiceTestSuite) openAuthorization() *domain.Authorization {
	start := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC) // Monday
	return &domain.Authorization{
		AuthorizationID: uuid.NewString(),
		IssueDate:       start,
		DriverName:      "Ali Hassan",
		DriverID:        uuid.NewString(),
		CarNumber:       "ABC-123",
		CarModel:        "Corolla",
		CarType:         "Sedan",
		StartDate:       &start,
		EndDate:         time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC),
		DailyRent:       decimal.RequireFromString("50.00"),
		Status:          domain.AuthorizationOpen,
	}
}

func (suite *AuthorizationServiceTestSuite) TestIssue_Success() {
	ctx := context.Background()
	car := suite.availableCar()
	driver := &domain.Driver{DriverID: uuid.NewString(), Name: "Ali Hassan", LicenseNo: "L-9981"}
	req := dto.IssueAuthorizationRequest{DriverName: "Ali Hassan", CarNumber: "ABC-123"}

	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(car, nil).Once()
	suite.mockAuthRepo.On("FindOpenByCarNumber", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDriverRepo.On("FindDriverByName", ctx, "Ali Hassan").Return(driver, nil).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("SaveAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).Return(nil).Once()
	suite.mockCarRepo.On("UpdateCarStatusInTx", ctx, mock.Anything, car.CarID, domain.CarRented, suite.clock.now).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	auth, err := suite.service.Issue(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(auth)
	suite.NotEmpty(auth.AuthorizationID)
	suite.Equal(domain.AuthorizationOpen, auth.Status)
	suite.True(auth.IsOpen())
	suite.Equal(suite.clock.now, auth.IssueDate)
	suite.Nil(auth.StartDate)
	// Snapshotted from the car row.
	suite.Equal("Corolla", auth.CarModel)
	suite.Equal("Sedan", auth.CarType)
	suite.True(auth.DailyRent.Equal(car.DailyRent))
	// Linked driver record.
	suite.Equal(driver.DriverID, auth.DriverID)
	suite.Equal("L-9981", auth.DriverLicenseNo)
	// Billing boundary: the upcoming Friday, end of day.
	suite.Equal(time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC), auth.EndDate)

	suite.mockAuthRepo.AssertExpectations(suite.T())
	suite.mockCarRepo.AssertExpectations(suite.T())
}

func (suite *AuthorizationServiceTestSuite) TestIssue_UnregisteredDriverNameAllowed() {
	ctx := context.Background()
	car := suite.availableCar()
	req := dto.IssueAuthorizationRequest{DriverName: "Walk-in Customer", CarNumber: "ABC-123"}

	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(car, nil).Once()
	suite.mockAuthRepo.On("FindOpenByCarNumber", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDriverRepo.On("FindDriverByName", ctx, "Walk-in Customer").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("SaveAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).Return(nil).Once()
	suite.mockCarRepo.On("UpdateCarStatusInTx", ctx, mock.Anything, car.CarID, domain.CarRented, suite.clock.now).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	auth, err := suite.service.Issue(ctx, req)

	suite.Require().NoError(err)
	suite.Empty(auth.DriverID)
	suite.Empty(auth.DriverLicenseNo)
}

func (suite *AuthorizationServiceTestSuite) TestIssue_OverridesAndStartDate() {
	ctx := context.Background()
	car := suite.availableCar()
	rent := decimal.RequireFromString("75.555")
	start := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC) // Monday
	req := dto.IssueAuthorizationRequest{
		DriverName: "Ali Hassan",
		CarNumber:  "ABC-123",
		CarModel:   "Camry",
		CarType:    "Luxury",
		StartDate:  &dto.FlexTime{Time: start},
		DailyRent:  &rent,
	}

	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(car, nil).Once()
	suite.mockAuthRepo.On("FindOpenByCarNumber", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockDriverRepo.On("FindDriverByName", ctx, "Ali Hassan").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("SaveAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).Return(nil).Once()
	suite.mockCarRepo.On("UpdateCarStatusInTx", ctx, mock.Anything, car.CarID, domain.CarRented, suite.clock.now).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	auth, err := suite.service.Issue(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Camry", auth.CarModel)
	suite.Equal("Luxury", auth.CarType)
	suite.True(auth.DailyRent.Equal(decimal.RequireFromString("75.56")), "rent normalized to 2dp, got %s", auth.DailyRent)
	suite.Require().NotNil(auth.StartDate)
	suite.Equal(start, *auth.StartDate)
	suite.Equal(start, auth.EffectiveStart())
	// Boundary computed from the supplied start, not the issue instant.
	suite.Equal(time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC), auth.EndDate)
}

func (suite *AuthorizationServiceTestSuite) TestIssue_CarNotRegistered() {
	ctx := context.Background()
	req := dto.IssueAuthorizationRequest{DriverName: "Ali Hassan", CarNumber: "NOPE-1"}

	suite.mockCarRepo.On("FindCarByPlate", ctx, "NOPE-1").Return(nil, apperrors.ErrNotFound).Once()

	auth, err := suite.service.Issue(ctx, req)

	suite.Require().Error(err)
	suite.Nil(auth)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthorizationServiceTestSuite) TestIssue_CarNotAvailable() {
	ctx := context.Background()
	car := suite.availableCar()
	car.Status = domain.CarUnderMaintenance
	req := dto.IssueAuthorizationRequest{DriverName: "Ali Hassan", CarNumber: "ABC-123"}

	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(car, nil).Once()

	auth, err := suite.service.Issue(ctx, req)

	suite.Require().Error(err)
	suite.Nil(auth)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAuthRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *AuthorizationServiceTestSuite) TestIssue_OpenAuthorizationExists() {
	ctx := context.Background()
	car := suite.availableCar()
	car.Status = domain.CarAvailable
	req := dto.IssueAuthorizationRequest{DriverName: "Ali Hassan", CarNumber: "ABC-123"}

	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(car, nil).Once()
	suite.mockAuthRepo.On("FindOpenByCarNumber", ctx, "ABC-123").Return(suite.openAuthorization(), nil).Once()

	auth, err := suite.service.Issue(ctx, req)

	suite.Require().Error(err)
	suite.Nil(auth)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AuthorizationServiceTestSuite) TestIssue_MissingFields() {
	ctx := context.Background()

	_, err := suite.service.Issue(ctx, dto.IssueAuthorizationRequest{CarNumber: "ABC-123"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Issue(ctx, dto.IssueAuthorizationRequest{DriverName: "Ali Hassan"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthorizationServiceTestSuite) TestIssue_NegativeRentOverride() {
	ctx := context.Background()
	car := suite.availableCar()
	rent := decimal.RequireFromString("-1")
	req := dto.IssueAuthorizationRequest{DriverName: "Ali Hassan", CarNumber: "ABC-123", DailyRent: &rent}

	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(car, nil).Once()
	suite.mockAuthRepo.On("FindOpenByCarNumber", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Issue(ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthorizationServiceTestSuite) TestEnd_WithRenewal() {
	ctx := context.Background()
	auth := suite.openAuthorization()
	car := suite.availableCar()
	car.Status = domain.CarRented

	var closed domain.Authorization
	var renewal domain.Authorization
	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, auth.AuthorizationID).Return(auth, nil).Once()
	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(car, nil).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("CloseAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).
		Run(func(args mock.Arguments) { closed = args.Get(2).(domain.Authorization) }).Return(nil).Once()
	suite.mockAuthRepo.On("SaveAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).
		Run(func(args mock.Arguments) { renewal = args.Get(2).(domain.Authorization) }).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.End(ctx, auth.AuthorizationID, dto.EndAuthorizationOptions{Renew: true})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)

	// Monday through Friday inclusive is five billable days at 50.00.
	suite.Equal(5, result.RentalDays)
	suite.True(result.FinalAmount.Equal(decimal.RequireFromString("250.00")), "got %s", result.FinalAmount)
	suite.Equal(domain.AuthorizationClosed, closed.Status)
	suite.Require().NotNil(closed.CloseDate)
	suite.Equal(suite.clock.now, *closed.CloseDate)
	suite.True(closed.ClosedAmount.Equal(result.FinalAmount))
	suite.Empty(closed.ClosureEntryID)

	// Renewal starts the morning after the boundary and runs to the next Friday.
	suite.Require().NotNil(result.Renewal)
	suite.Equal(time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC), renewal.IssueDate)
	suite.Require().NotNil(renewal.StartDate)
	suite.Equal(renewal.IssueDate, *renewal.StartDate)
	suite.Equal(time.Date(2025, 1, 17, 23, 59, 59, 0, time.UTC), renewal.EndDate)
	suite.Equal(auth.DriverName, renewal.DriverName)
	suite.Equal(auth.CarNumber, renewal.CarNumber)
	suite.True(renewal.DailyRent.Equal(auth.DailyRent))
	suite.True(renewal.IsOpen())

	// The car stays rented across a renewal.
	suite.mockCarRepo.AssertNotCalled(suite.T(), "UpdateCarStatusInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// Receipt draft pre-filled for the collection that usually follows.
	suite.Equal(closed.AuthorizationID, result.ReceiptDraft.AuthorizationID)
	suite.True(result.ReceiptDraft.Amount.Equal(result.FinalAmount))

	suite.mockAuthRepo.AssertExpectations(suite.T())
}

func (suite *AuthorizationServiceTestSuite) TestEnd_NoRenewalFreesCar() {
	ctx := context.Background()
	auth := suite.openAuthorization()
	car := suite.availableCar()
	car.Status = domain.CarRented

	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, auth.AuthorizationID).Return(auth, nil).Once()
	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(car, nil).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("CloseAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).Return(nil).Once()
	suite.mockCarRepo.On("UpdateCarStatusInTx", ctx, mock.Anything, car.CarID, domain.CarAvailable, suite.clock.now).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.End(ctx, auth.AuthorizationID, dto.EndAuthorizationOptions{Renew: false})

	suite.Require().NoError(err)
	suite.Nil(result.Renewal)
	suite.mockAuthRepo.AssertNotCalled(suite.T(), "SaveAuthorizationInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockCarRepo.AssertExpectations(suite.T())
}

func (suite *AuthorizationServiceTestSuite) TestEnd_MissingCarTolerated() {
	ctx := context.Background()
	auth := suite.openAuthorization()

	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, auth.AuthorizationID).Return(auth, nil).Once()
	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("CloseAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.End(ctx, auth.AuthorizationID, dto.EndAuthorizationOptions{Renew: false})

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.mockCarRepo.AssertNotCalled(suite.T(), "UpdateCarStatusInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthorizationServiceTestSuite) TestEnd_AmountOverrideWins() {
	ctx := context.Background()
	auth := suite.openAuthorization()
	override := decimal.RequireFromString("199.99")

	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, auth.AuthorizationID).Return(auth, nil).Once()
	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("CloseAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.End(ctx, auth.AuthorizationID, dto.EndAuthorizationOptions{ClosedAmount: &override})

	suite.Require().NoError(err)
	suite.True(result.FinalAmount.Equal(override), "got %s", result.FinalAmount)
	// The computed day count still reports the calendar facts.
	suite.Equal(5, result.RentalDays)
}

func (suite *AuthorizationServiceTestSuite) TestEnd_ZeroOverrideIgnored() {
	ctx := context.Background()
	auth := suite.openAuthorization()
	override := decimal.Zero

	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, auth.AuthorizationID).Return(auth, nil).Once()
	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("CloseAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.End(ctx, auth.AuthorizationID, dto.EndAuthorizationOptions{ClosedAmount: &override})

	suite.Require().NoError(err)
	suite.True(result.FinalAmount.Equal(decimal.RequireFromString("250.00")), "got %s", result.FinalAmount)
}

func (suite *AuthorizationServiceTestSuite) TestEnd_PostsClosureEntry() {
	ctx := context.Background()
	auth := suite.openAuthorization()
	entry := &domain.JournalEntry{EntryID: uuid.NewString(), RefAuthorizationID: auth.AuthorizationID}
	lines := []domain.JournalLine{{EntryID: entry.EntryID}, {EntryID: entry.EntryID}}

	var closed domain.Authorization
	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, auth.AuthorizationID).Return(auth, nil).Once()
	suite.mockJournalSvc.On("BuildClosureEntry", ctx, mock.AnythingOfType("domain.Authorization"), mock.Anything).Return(entry, lines, nil).Once()
	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("CloseAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).
		Run(func(args mock.Arguments) { closed = args.Get(2).(domain.Authorization) }).Return(nil).Once()
	suite.mockJournalRepo.On("SaveEntryInTx", ctx, mock.Anything, *entry, lines).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.End(ctx, auth.AuthorizationID, dto.EndAuthorizationOptions{PostJournal: true})

	suite.Require().NoError(err)
	suite.Equal(entry.EntryID, closed.ClosureEntryID)
	suite.Equal(entry.EntryID, result.Closed.ClosureEntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *AuthorizationServiceTestSuite) TestEnd_SkipsJournalWhenNotRequested() {
	ctx := context.Background()
	auth := suite.openAuthorization()

	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, auth.AuthorizationID).Return(auth, nil).Once()
	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("CloseAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.End(ctx, auth.AuthorizationID, dto.EndAuthorizationOptions{})

	suite.Require().NoError(err)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "BuildClosureEntry", mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntryInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthorizationServiceTestSuite) TestEnd_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.End(ctx, id, dto.EndAuthorizationOptions{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthorizationServiceTestSuite) TestEnd_AlreadyClosed() {
	ctx := context.Background()
	auth := suite.openAuthorization()
	closeDate := time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC)
	auth.CloseDate = &closeDate
	auth.Status = domain.AuthorizationClosed

	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, auth.AuthorizationID).Return(auth, nil).Once()

	result, err := suite.service.End(ctx, auth.AuthorizationID, dto.EndAuthorizationOptions{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAuthRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *AuthorizationServiceTestSuite) TestEnd_BackfillsMissingEndDate() {
	ctx := context.Background()
	auth := suite.openAuthorization()
	auth.EndDate = time.Time{}

	var closed domain.Authorization
	suite.mockAuthRepo.On("FindAuthorizationByID", ctx, auth.AuthorizationID).Return(auth, nil).Once()
	suite.mockCarRepo.On("FindCarByPlate", ctx, "ABC-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAuthRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAuthRepo.On("CloseAuthorizationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Authorization")).
		Run(func(args mock.Arguments) { closed = args.Get(2).(domain.Authorization) }).Return(nil).Once()
	suite.mockAuthRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuthRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.End(ctx, auth.AuthorizationID, dto.EndAuthorizationOptions{Renew: false})

	suite.Require().NoError(err)
	suite.Equal(time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC), closed.EndDate)
	suite.Equal(5, result.RentalDays)
}

func (suite *AuthorizationServiceTestSuite) TestListAuthorizations() {
	ctx := context.Background()
	auths := []domain.Authorization{*suite.openAuthorization()}

	suite.mockAuthRepo.On("ListAuthorizations", ctx, true).Return(auths, nil).Once()

	got, err := suite.service.ListAuthorizations(ctx, true)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

func TestAuthorizationService(t *testing.T) {
	suite.Run(t, new(AuthorizationServiceTestSuite))
}
