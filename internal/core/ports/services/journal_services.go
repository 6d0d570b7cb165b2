package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// JournalSvcFacade exposes the ledger/journal engine.
type JournalSvcFacade interface {
	// BuildClosureEntry constructs the balanced revenue-recognition entry for
	// an authorization closure: debit the driver account, credit rental
	// revenue. Returns nil (no entry) when amount is not positive or the
	// revenue account has not been bootstrapped.
	BuildClosureEntry(ctx context.Context, auth domain.Authorization, amount decimal.Decimal) (*domain.JournalEntry, []domain.JournalLine, error)

	// BuildReceiptEntry constructs the balanced collection entry for a cash
	// receipt: debit cash, credit the driver account. Returns nil when the
	// amount is not positive or the cash account has not been bootstrapped.
	BuildReceiptEntry(ctx context.Context, receipt domain.CashReceipt) (*domain.JournalEntry, []domain.JournalLine, error)

	// CreateManualEntry validates and persists a free-form multi-line entry.
	// Debits and credits must balance within the accepted tolerance.
	CreateManualEntry(ctx context.Context, req dto.CreateManualEntryRequest) (*domain.JournalEntry, []domain.JournalLine, error)

	// GetEntry retrieves an entry and its lines.
	GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, []domain.JournalLine, error)

	// ListEntries retrieves all entries, newest first.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
}
