package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/core/ports"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// System account names. The bootstrap guarantees these exist before any
// lifecycle operation can post to them.
const (
	CashAccountName          = "Cash"
	RentalRevenueAccountName = "Rental Revenue"
	DriverRootAccountName    = "Drivers"
)

// accountService owns the chart of accounts: the bootstrapped system accounts,
// the lazily-created per-driver sub-accounts, and the ledger report.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalReader
	clock       ports.Clock
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalReader, clock ports.Clock) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		clock:       clock,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// ensureAccount returns the account with the given name, creating it when
// absent. Losing a concurrent-create race is harmless: the unique constraint
// rejects the duplicate and the winner's row is returned instead.
func (s *accountService) ensureAccount(ctx context.Context, name string, accType domain.AccountType, isGroup bool, parentID string) (*domain.Account, error) {
	existing, err := s.accountRepo.FindAccountByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Name:            name,
		AccountType:     accType,
		IsGroup:         isGroup,
		ParentAccountID: parentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.accountRepo.FindAccountByName(ctx, name)
		}
		return nil, err
	}
	return &account, nil
}

func (s *accountService) EnsureCoreAccounts(ctx context.Context) error {
	if _, err := s.ensureAccount(ctx, CashAccountName, domain.Asset, false, ""); err != nil {
		return fmt.Errorf("failed to ensure cash account: %w", err)
	}
	if _, err := s.ensureAccount(ctx, RentalRevenueAccountName, domain.Revenue, false, ""); err != nil {
		return fmt.Errorf("failed to ensure rental revenue account: %w", err)
	}
	if _, err := s.EnsureDriverRootAccount(ctx); err != nil {
		return fmt.Errorf("failed to ensure driver root account: %w", err)
	}
	return nil
}

func (s *accountService) EnsureDriverRootAccount(ctx context.Context) (*domain.Account, error) {
	return s.ensureAccount(ctx, DriverRootAccountName, domain.Asset, true, "")
}

func (s *accountService) EnsureDriverSubAccount(ctx context.Context, driver domain.Driver) (*domain.Account, error) {
	existing, err := s.accountRepo.FindAccountByRelatedDriverID(ctx, driver.DriverID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	root, err := s.EnsureDriverRootAccount(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(driver.Name)
	if name == "" {
		name = "Driver " + driver.DriverID
	}

	now := s.clock.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Name:            name,
		AccountType:     domain.Asset,
		IsGroup:         false,
		ParentAccountID: root.AccountID,
		RelatedDriverID: driver.DriverID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent call created it first; return that row.
			return s.accountRepo.FindAccountByRelatedDriverID(ctx, driver.DriverID)
		}
		return nil, err
	}
	return &account, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}

	var parentID string
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, *req.ParentAccountID)
			}
			return nil, err
		}
		parentID = parent.AccountID
	}

	now := s.clock.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Name:            name,
		AccountType:     req.AccountType,
		IsGroup:         req.IsGroup,
		ParentAccountID: parentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.RelatedDriverID != nil {
		account.RelatedDriverID = *req.RelatedDriverID
	}
	if req.RelatedCarID != nil {
		account.RelatedCarID = *req.RelatedCarID
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// GetLedger builds the debit-normal ledger report for one account. The
// running balance is cumulative debit minus credit; callers interpret the
// sign per account type.
func (s *accountService) GetLedger(ctx context.Context, accountID string) ([]dto.LedgerRow, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	lines, err := s.journalRepo.ListLinesByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	entryIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.EntryID]; ok {
			continue
		}
		seen[line.EntryID] = struct{}{}
		entryIDs = append(entryIDs, line.EntryID)
	}

	entries, err := s.journalRepo.FindEntriesByIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.LedgerRow, 0, len(lines))
	balance := decimal.Zero
	for _, line := range lines {
		entry, ok := entries[line.EntryID]
		if !ok {
			return nil, apperrors.NewAppError(500, "journal entry "+line.EntryID+" missing for its line", nil)
		}
		balance = balance.Add(line.Debit).Sub(line.Credit)
		rows = append(rows, dto.LedgerRow{
			EntryID:     entry.EntryID,
			EntryDate:   entry.EntryDate,
			Description: entry.Description,
			Source:      entry.Source(),
			Debit:       line.Debit,
			Credit:      line.Credit,
			Balance:     balance,
		})
	}
	return rows, nil
}
