package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// AuthorizationReader defines read operations for authorization data.
type AuthorizationReader interface {
	// FindAuthorizationByID retrieves an authorization by its unique identifier.
	FindAuthorizationByID(ctx context.Context, authorizationID string) (*domain.Authorization, error)

	// FindOpenByCarNumber retrieves the open authorization for a car plate, if any.
	FindOpenByCarNumber(ctx context.Context, carNumber string) (*domain.Authorization, error)

	// ListAuthorizations retrieves authorizations newest first, optionally only open ones.
	ListAuthorizations(ctx context.Context, onlyOpen bool) ([]domain.Authorization, error)
}

// AuthorizationTransactionSupport defines authorization writes that participate
// in a caller-owned transaction. Issue and end both mutate the car row in the
// same unit, so there are no standalone write variants.
type AuthorizationTransactionSupport interface {
	// SaveAuthorizationInTx inserts a new authorization within the given transaction.
	SaveAuthorizationInTx(ctx context.Context, tx pgx.Tx, auth domain.Authorization) error

	// CloseAuthorizationInTx persists the closure fields of an authorization
	// (close date, status, backfilled end date, closed amount, closing note,
	// closure entry link) within the given transaction.
	CloseAuthorizationInTx(ctx context.Context, tx pgx.Tx, auth domain.Authorization) error
}

// AuthorizationRepositoryFacade combines all authorization-related repository interfaces.
type AuthorizationRepositoryFacade interface {
	AuthorizationReader
	AuthorizationTransactionSupport
}

// AuthorizationRepositoryWithTx extends AuthorizationRepositoryFacade with
// transaction management.
type AuthorizationRepositoryWithTx interface {
	AuthorizationRepositoryFacade
	TransactionManager
}
