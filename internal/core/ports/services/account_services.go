package services

import (
	"context"

	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// AccountSvcFacade exposes the chart-of-accounts operations.
type AccountSvcFacade interface {
	// EnsureCoreAccounts guarantees the cash account, the rental revenue
	// account and the driver root group exist. Idempotent; run at startup.
	EnsureCoreAccounts(ctx context.Context) error

	// EnsureDriverRootAccount returns the driver root group account, creating
	// it if absent. Idempotent.
	EnsureDriverRootAccount(ctx context.Context) (*domain.Account, error)

	// EnsureDriverSubAccount returns the driver's sub-account under the driver
	// root group, creating it if absent. Idempotent per driver.
	EnsureDriverSubAccount(ctx context.Context, driver domain.Driver) (*domain.Account, error)

	// CreateAccount creates a free-form account. Duplicate names are rejected.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves an account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by name.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetLedger returns every journal line touching the account, ordered by
	// entry date then line insertion order, with a debit-normal running balance.
	GetLedger(ctx context.Context, accountID string) ([]dto.LedgerRow, error)
}
