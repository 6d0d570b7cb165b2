package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/core/ports"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
	"github.com/fleetops/car_rental_app/internal/utils/billing"
)

// renewalStartHour is the hour of day the follow-up authorization begins at,
// the morning after the closed billing boundary.
const renewalStartHour = 9

// authorizationService drives the rental lifecycle: issuing an authorization
// against an available car and ending it, with optional revenue posting and
// renewal into the next billing week.
type authorizationService struct {
	authRepo    portsrepo.AuthorizationRepositoryWithTx
	carRepo     portsrepo.CarRepositoryFacade
	driverRepo  portsrepo.DriverRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
	journalSvc  portssvc.JournalSvcFacade
	clock       ports.Clock
}

// NewAuthorizationService creates a new authorization service.
func NewAuthorizationService(
	authRepo portsrepo.AuthorizationRepositoryWithTx,
	carRepo portsrepo.CarRepositoryFacade,
	driverRepo portsrepo.DriverRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	journalSvc portssvc.JournalSvcFacade,
	clock ports.Clock,
) portssvc.AuthorizationSvcFacade {
	return &authorizationService{
		authRepo:    authRepo,
		carRepo:     carRepo,
		driverRepo:  driverRepo,
		journalRepo: journalRepo,
		journalSvc:  journalSvc,
		clock:       clock,
	}
}

var _ portssvc.AuthorizationSvcFacade = (*authorizationService)(nil)

func (s *authorizationService) Issue(ctx context.Context, req dto.IssueAuthorizationRequest) (*domain.Authorization, error) {
	driverName := strings.TrimSpace(req.DriverName)
	if driverName == "" {
		return nil, fmt.Errorf("%w: driver name is required", apperrors.ErrValidation)
	}
	carNumber := strings.TrimSpace(req.CarNumber)
	if carNumber == "" {
		return nil, fmt.Errorf("%w: car number is required", apperrors.ErrValidation)
	}

	car, err := s.carRepo.FindCarByPlate(ctx, carNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: car %s is not registered", apperrors.ErrValidation, carNumber)
		}
		return nil, err
	}
	if car.Status != domain.CarAvailable {
		return nil, fmt.Errorf("%w: car %s is not available (status %s)", apperrors.ErrValidation, carNumber, car.Status)
	}

	if open, err := s.authRepo.FindOpenByCarNumber(ctx, carNumber); err == nil && open != nil {
		return nil, fmt.Errorf("%w: car %s already has an open authorization (%s)", apperrors.ErrConflict, carNumber, open.AuthorizationID)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// Snapshot the car's model, type and rent; the request may override each.
	model := car.Model
	if req.CarModel != "" {
		model = req.CarModel
	}
	carType := car.CarType
	if req.CarType != "" {
		carType = req.CarType
	}
	rent := car.DailyRent
	if req.DailyRent != nil {
		if req.DailyRent.IsNegative() {
			return nil, fmt.Errorf("%w: invalid rent value", apperrors.ErrValidation)
		}
		rent = *req.DailyRent
	}
	rent = rent.Round(2)

	now := s.clock.Now()
	var startDate *time.Time
	effectiveStart := now
	if req.StartDate != nil {
		t := req.StartDate.Time
		startDate = &t
		effectiveStart = t
	}

	auth := domain.Authorization{
		AuthorizationID: uuid.NewString(),
		IssueDate:       now,
		DriverName:      driverName,
		CarNumber:       carNumber,
		CarModel:        model,
		CarType:         carType,
		StartDate:       startDate,
		EndDate:         billing.NextFridayEndOfDay(effectiveStart),
		DailyRent:       rent,
		Details:         req.Details,
		Status:          domain.AuthorizationOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// Link the driver record when one exists under this name. Absence is not
	// an error: authorizations accept free-form driver names.
	if driver, err := s.driverRepo.FindDriverByName(ctx, driverName); err == nil {
		auth.DriverID = driver.DriverID
		auth.DriverLicenseNo = driver.LicenseNo
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	tx, err := s.authRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction for issue", err)
	}
	defer func() { _ = s.authRepo.Rollback(ctx, tx) }()

	// Losing a concurrent-issue race trips the open-authorization index and
	// surfaces as ErrConflict from the repository, same as the up-front check.
	if err := s.authRepo.SaveAuthorizationInTx(ctx, tx, auth); err != nil {
		return nil, err
	}
	if err := s.carRepo.UpdateCarStatusInTx(ctx, tx, car.CarID, domain.CarRented, now); err != nil {
		return nil, err
	}
	if err := s.authRepo.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit issue transaction", err)
	}
	return &auth, nil
}

func (s *authorizationService) End(ctx context.Context, authorizationID string, opts dto.EndAuthorizationOptions) (*dto.EndAuthorizationResult, error) {
	auth, err := s.authRepo.FindAuthorizationByID(ctx, authorizationID)
	if err != nil {
		return nil, err
	}
	if !auth.IsOpen() {
		return nil, fmt.Errorf("%w: authorization %s is already closed", apperrors.ErrConflict, authorizationID)
	}

	now := s.clock.Now()

	// Backfill the billing boundary for legacy rows that predate it.
	endDate := auth.EndDate
	if endDate.IsZero() {
		endDate = billing.NextFridayEndOfDay(auth.EffectiveStart())
	}

	rentalDays := billing.RentalDays(auth.EffectiveStart(), endDate)
	finalAmount := billing.RentAmount(auth.DailyRent, rentalDays)
	if opts.ClosedAmount != nil && opts.ClosedAmount.IsPositive() {
		finalAmount = opts.ClosedAmount.Round(2)
	}

	closed := *auth
	closed.Status = domain.AuthorizationClosed
	closed.CloseDate = &now
	closed.EndDate = endDate
	closed.ClosedAmount = finalAmount
	closed.ClosingNote = opts.ClosingNote
	closed.LastUpdatedAt = now

	// Build the closure entry before opening the transaction: account
	// resolution is idempotent and must not hold the tx open.
	var entry *domain.JournalEntry
	var lines []domain.JournalLine
	if opts.PostJournal {
		entry, lines, err = s.journalSvc.BuildClosureEntry(ctx, closed, finalAmount)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			closed.ClosureEntryID = entry.EntryID
		}
	}

	var renewal *domain.Authorization
	if opts.Renew {
		r := s.buildRenewal(closed, endDate)
		renewal = &r
	}

	// CarNumber is a soft reference; a missing car row never blocks the close.
	car, err := s.carRepo.FindCarByPlate(ctx, auth.CarNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	tx, err := s.authRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction for end", err)
	}
	defer func() { _ = s.authRepo.Rollback(ctx, tx) }()

	if err := s.authRepo.CloseAuthorizationInTx(ctx, tx, closed); err != nil {
		return nil, err
	}
	if entry != nil {
		if err := s.journalRepo.SaveEntryInTx(ctx, tx, *entry, lines); err != nil {
			return nil, err
		}
	}
	if renewal != nil {
		if err := s.authRepo.SaveAuthorizationInTx(ctx, tx, *renewal); err != nil {
			return nil, err
		}
	}
	if car != nil && renewal == nil {
		if err := s.carRepo.UpdateCarStatusInTx(ctx, tx, car.CarID, domain.CarAvailable, now); err != nil {
			return nil, err
		}
	}
	if err := s.authRepo.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit end transaction", err)
	}

	result := dto.EndAuthorizationResult{
		Closed:      closed,
		Renewal:     renewal,
		RentalDays:  rentalDays,
		FinalAmount: finalAmount,
		ReceiptDraft: dto.ReceiptDraft{
			AuthorizationID: closed.AuthorizationID,
			DriverID:        closed.DriverID,
			DriverName:      closed.DriverName,
			Amount:          finalAmount,
			Description:     fmt.Sprintf("Collection for authorization %s (car %s)", closed.AuthorizationID, closed.CarNumber),
		},
	}
	return &result, nil
}

// buildRenewal spawns the follow-up authorization for the next billing week:
// it starts the morning after the closed boundary and runs to the next Friday.
// The closed authorization's daily rent carries over verbatim, even when the
// close used a manual amount override.
func (s *authorizationService) buildRenewal(closed domain.Authorization, endDate time.Time) domain.Authorization {
	nextDay := endDate.AddDate(0, 0, 1)
	nextStart := time.Date(nextDay.Year(), nextDay.Month(), nextDay.Day(), renewalStartHour, 0, 0, 0, nextDay.Location())
	start := nextStart
	now := s.clock.Now()

	return domain.Authorization{
		AuthorizationID: uuid.NewString(),
		IssueDate:       nextStart,
		DriverName:      closed.DriverName,
		DriverID:        closed.DriverID,
		DriverLicenseNo: closed.DriverLicenseNo,
		CarNumber:       closed.CarNumber,
		CarModel:        closed.CarModel,
		CarType:         closed.CarType,
		StartDate:       &start,
		EndDate:         billing.NextFridayEndOfDay(nextStart),
		DailyRent:       closed.DailyRent,
		Details:         closed.Details,
		Status:          domain.AuthorizationOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

func (s *authorizationService) GetAuthorization(ctx context.Context, authorizationID string) (*domain.Authorization, error) {
	return s.authRepo.FindAuthorizationByID(ctx, authorizationID)
}

func (s *authorizationService) ListAuthorizations(ctx context.Context, onlyOpen bool) ([]domain.Authorization, error) {
	return s.authRepo.ListAuthorizations(ctx, onlyOpen)
}
