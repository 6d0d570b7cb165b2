package services

import (
	"github.com/fleetops/car_rental_app/internal/core/ports"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
)

// NewServiceContainer wires every service from the repository provider and a
// shared clock.
func NewServiceContainer(repos portsrepo.RepositoryProvider, clock ports.Clock) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo, repos.JournalRepo, clock)
	journalSvc := NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.DriverRepo, accountSvc, clock)

	return &portssvc.ServiceContainer{
		Car:           NewCarService(repos.CarRepo, clock),
		Driver:        NewDriverService(repos.DriverRepo, clock),
		Account:       accountSvc,
		Journal:       journalSvc,
		Authorization: NewAuthorizationService(repos.AuthorizationRepo, repos.CarRepo, repos.DriverRepo, repos.JournalRepo, journalSvc, clock),
		Receipt:       NewReceiptService(repos.ReceiptRepo, repos.JournalRepo, repos.DriverRepo, repos.AuthorizationRepo, journalSvc, clock),
	}
}
