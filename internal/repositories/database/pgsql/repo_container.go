package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CarRepo:           newPgxCarRepository(dbPool),
		DriverRepo:        newPgxDriverRepository(dbPool),
		AccountRepo:       newPgxAccountRepository(dbPool),
		JournalRepo:       newPgxJournalRepository(dbPool),
		AuthorizationRepo: newPgxAuthorizationRepository(dbPool),
		ReceiptRepo:       newPgxReceiptRepository(dbPool),
	}
}
