package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/core/ports"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// receiptService records cash collections. A receipt and its journal entry are
// one atomic unit; neither is ever persisted without the other.
type receiptService struct {
	receiptRepo portsrepo.ReceiptRepositoryWithTx
	journalRepo portsrepo.JournalRepositoryFacade
	driverRepo  portsrepo.DriverRepositoryFacade
	authRepo    portsrepo.AuthorizationReader
	journalSvc  portssvc.JournalSvcFacade
	clock       ports.Clock
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(
	receiptRepo portsrepo.ReceiptRepositoryWithTx,
	journalRepo portsrepo.JournalRepositoryFacade,
	driverRepo portsrepo.DriverRepositoryFacade,
	authRepo portsrepo.AuthorizationReader,
	journalSvc portssvc.JournalSvcFacade,
	clock ports.Clock,
) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo: receiptRepo,
		journalRepo: journalRepo,
		driverRepo:  driverRepo,
		authRepo:    authRepo,
		journalSvc:  journalSvc,
		clock:       clock,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func (s *receiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.CashReceipt, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	driverID := ""
	driverName := strings.TrimSpace(req.DriverName)
	if req.DriverID != "" {
		driver, err := s.driverRepo.FindDriverByID(ctx, req.DriverID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: driver %s not found", apperrors.ErrValidation, req.DriverID)
			}
			return nil, err
		}
		driverID = driver.DriverID
		driverName = driver.Name
	} else if driverName != "" {
		// A name without a registered driver is allowed; the entry falls back
		// to the driver root account.
		if driver, err := s.driverRepo.FindDriverByName(ctx, driverName); err == nil {
			driverID = driver.DriverID
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	if req.AuthorizationID != "" {
		if _, err := s.authRepo.FindAuthorizationByID(ctx, req.AuthorizationID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: authorization %s not found", apperrors.ErrValidation, req.AuthorizationID)
			}
			return nil, err
		}
	}

	now := s.clock.Now()
	receiptDate := now
	if req.Date != nil {
		receiptDate = req.Date.Time
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		switch {
		case req.AuthorizationID != "":
			description = fmt.Sprintf("Collection for authorization %s", req.AuthorizationID)
		case driverName != "":
			description = fmt.Sprintf("Cash received from %s", driverName)
		default:
			description = "Cash receipt"
		}
	}

	receipt := domain.CashReceipt{
		ReceiptID:          uuid.NewString(),
		ReceiptDate:        receiptDate,
		DriverID:           driverID,
		DriverName:         driverName,
		Amount:             req.Amount.Round(2),
		Description:        description,
		RefAuthorizationID: req.AuthorizationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	entry, lines, err := s.journalSvc.BuildReceiptEntry(ctx, receipt)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		// Amount is known positive here, so a nil entry means the cash account
		// is missing: the bootstrap never ran. Refuse rather than persist a
		// receipt without its entry.
		return nil, apperrors.NewAppError(500, "cash account is not bootstrapped; cannot post receipt", nil)
	}
	receipt.EntryID = entry.EntryID

	tx, err := s.receiptRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction for receipt", err)
	}
	defer func() { _ = s.receiptRepo.Rollback(ctx, tx) }()

	if err := s.receiptRepo.SaveReceiptInTx(ctx, tx, receipt); err != nil {
		return nil, err
	}
	if err := s.journalRepo.SaveEntryInTx(ctx, tx, *entry, lines); err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit receipt transaction", err)
	}
	return &receipt, nil
}

func (s *receiptService) ListReceipts(ctx context.Context) ([]domain.CashReceipt, error) {
	return s.receiptRepo.ListReceipts(ctx)
}
