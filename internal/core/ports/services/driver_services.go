package services

import (
	"context"

	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// DriverSvcFacade exposes the driver registry operations.
type DriverSvcFacade interface {
	// CreateDriver registers a new driver. Duplicate names are rejected.
	CreateDriver(ctx context.Context, req dto.CreateDriverRequest) (*domain.Driver, error)

	// GetDriverByID retrieves a driver by its unique identifier.
	GetDriverByID(ctx context.Context, driverID string) (*domain.Driver, error)

	// ListDrivers retrieves all drivers, newest first.
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
}
