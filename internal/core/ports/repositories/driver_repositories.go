package repositories

import (
	"context"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// DriverReader defines read operations for driver data.
type DriverReader interface {
	// FindDriverByID retrieves a driver by its unique identifier.
	FindDriverByID(ctx context.Context, driverID string) (*domain.Driver, error)

	// FindDriverByName retrieves a driver by exact name.
	FindDriverByName(ctx context.Context, name string) (*domain.Driver, error)

	// ListDrivers retrieves all drivers, newest first.
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
}

// DriverWriter defines write operations for driver data.
type DriverWriter interface {
	// SaveDriver persists a new driver.
	SaveDriver(ctx context.Context, driver domain.Driver) error
}

// DriverRepositoryFacade combines all driver-related repository interfaces.
type DriverRepositoryFacade interface {
	DriverReader
	DriverWriter
}
