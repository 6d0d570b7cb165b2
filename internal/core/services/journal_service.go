package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/core/ports"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
)

var (
	ErrEntryUnbalanced = errors.New("journal entry debits and credits do not balance")
	ErrEntryNoLines    = errors.New("journal entry must have at least one usable line")
)

// balanceTolerance absorbs cent-level rounding when checking that debits equal
// credits on manual entries.
var balanceTolerance = decimal.New(5, -3) // 0.005

// journalService provides the ledger/journal engine. System entries (closure,
// receipt) are constructed balanced by design; only manual entries go through
// the full balance validation.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryWithTx
	accountRepo portsrepo.AccountRepositoryFacade
	driverRepo  portsrepo.DriverRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	clock       ports.Clock
}

// NewJournalService creates a new journal service.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	driverRepo portsrepo.DriverRepositoryFacade,
	accountSvc portssvc.AccountSvcFacade,
	clock ports.Clock,
) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		driverRepo:  driverRepo,
		accountSvc:  accountSvc,
		clock:       clock,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// resolveDriverAccount returns the account to post a driver-side line to: the
// driver's sub-account when the driver link resolves (creating the sub-account
// on first use), otherwise the driver root group account.
func (s *journalService) resolveDriverAccount(ctx context.Context, driverID string) (*domain.Account, error) {
	if driverID != "" {
		driver, err := s.driverRepo.FindDriverByID(ctx, driverID)
		if err == nil {
			return s.accountSvc.EnsureDriverSubAccount(ctx, *driver)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}
	return s.accountSvc.EnsureDriverRootAccount(ctx)
}

// newLine builds one side of a system entry.
func newLine(entryID, accountID string, debit, credit decimal.Decimal, lineNo int, now domain.AuditFields) domain.JournalLine {
	return domain.JournalLine{
		LineID:      uuid.NewString(),
		EntryID:     entryID,
		AccountID:   accountID,
		Debit:       debit,
		Credit:      credit,
		LineNo:      lineNo,
		AuditFields: now,
	}
}

func (s *journalService) BuildClosureEntry(ctx context.Context, auth domain.Authorization, amount decimal.Decimal) (*domain.JournalEntry, []domain.JournalLine, error) {
	if !amount.IsPositive() {
		return nil, nil, nil
	}

	revenue, err := s.accountRepo.FindAccountByName(ctx, RentalRevenueAccountName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Bootstrap has not run; skip posting rather than fail the close.
			return nil, nil, nil
		}
		return nil, nil, err
	}

	driverAccount, err := s.resolveDriverAccount(ctx, auth.DriverID)
	if err != nil {
		return nil, nil, err
	}

	now := s.clock.Now()
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	amount = amount.Round(2)

	entry := domain.JournalEntry{
		EntryID:            uuid.NewString(),
		EntryDate:          now,
		Description:        fmt.Sprintf("Rental revenue for authorization %s", auth.AuthorizationID),
		RefAuthorizationID: auth.AuthorizationID,
		AuditFields:        audit,
	}
	lines := []domain.JournalLine{
		newLine(entry.EntryID, driverAccount.AccountID, amount, decimal.Zero, 1, audit),
		newLine(entry.EntryID, revenue.AccountID, decimal.Zero, amount, 2, audit),
	}
	return &entry, lines, nil
}

func (s *journalService) BuildReceiptEntry(ctx context.Context, receipt domain.CashReceipt) (*domain.JournalEntry, []domain.JournalLine, error) {
	if !receipt.Amount.IsPositive() {
		return nil, nil, nil
	}

	cash, err := s.accountRepo.FindAccountByName(ctx, CashAccountName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	driverAccount, err := s.resolveDriverAccount(ctx, receipt.DriverID)
	if err != nil {
		return nil, nil, err
	}

	now := s.clock.Now()
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	amount := receipt.Amount.Round(2)

	description := receipt.Description
	if description == "" {
		description = fmt.Sprintf("Cash receipt %s", receipt.ReceiptID)
	}

	entry := domain.JournalEntry{
		EntryID:            uuid.NewString(),
		EntryDate:          receipt.ReceiptDate,
		Description:        description,
		RefReceiptID:       receipt.ReceiptID,
		RefAuthorizationID: receipt.RefAuthorizationID,
		AuditFields:        audit,
	}
	lines := []domain.JournalLine{
		newLine(entry.EntryID, cash.AccountID, amount, decimal.Zero, 1, audit),
		newLine(entry.EntryID, driverAccount.AccountID, decimal.Zero, amount, 2, audit),
	}
	return &entry, lines, nil
}

func (s *journalService) CreateManualEntry(ctx context.Context, req dto.CreateManualEntryRequest) (*domain.JournalEntry, []domain.JournalLine, error) {
	// Drop lines where both sides are zero; the UI sends empty rows freely.
	usable := make([]dto.ManualEntryLineRequest, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Debit.IsZero() && line.Credit.IsZero() {
			continue
		}
		usable = append(usable, line)
	}
	if len(usable) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEntryNoLines)
	}

	accountIDs := make([]string, 0, len(usable))
	for i, line := range usable {
		lineNo := i + 1
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, nil, fmt.Errorf("%w: line %d: amounts must not be negative", apperrors.ErrValidation, lineNo)
		}
		if !line.Debit.IsZero() && !line.Credit.IsZero() {
			return nil, nil, fmt.Errorf("%w: line %d: a line cannot both debit and credit", apperrors.ErrValidation, lineNo)
		}
		accountIDs = append(accountIDs, line.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(accountIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch accounts for manual entry: %w", err)
	}
	for i, line := range usable {
		lineNo := i + 1
		account, ok := accounts[line.AccountID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: line %d: account %s not found", apperrors.ErrValidation, lineNo, line.AccountID)
		}
		if account.IsGroup {
			return nil, nil, fmt.Errorf("%w: line %d: account %q is a group account and cannot be posted to", apperrors.ErrValidation, lineNo, account.Name)
		}
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range usable {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	if debits.Sub(credits).Abs().GreaterThan(balanceTolerance) {
		return nil, nil, fmt.Errorf("%w: %s: debits total %s, credits total %s",
			apperrors.ErrValidation, ErrEntryUnbalanced, debits.StringFixed(2), credits.StringFixed(2))
	}

	now := s.clock.Now()
	entryDate := now
	if req.Date != nil {
		entryDate = req.Date.Time
	}
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   entryDate,
		Description: req.Description,
		AuditFields: audit,
	}
	lines := make([]domain.JournalLine, len(usable))
	for i, line := range usable {
		lines[i] = newLine(entry.EntryID, line.AccountID, line.Debit.Round(2), line.Credit.Round(2), i+1, audit)
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		return nil, nil, fmt.Errorf("failed to save manual entry: %w", err)
	}
	return &entry, lines, nil
}

func (s *journalService) GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, []domain.JournalLine, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, nil, err
	}
	return entry, lines, nil
}

func (s *journalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	return s.journalRepo.ListEntries(ctx)
}

// uniqueStrings removes duplicates, preserving first-seen order.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	out := input[:0]
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
