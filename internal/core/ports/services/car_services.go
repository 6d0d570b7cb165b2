package services

import (
	"context"

	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// CarSvcFacade exposes the car registry operations.
type CarSvcFacade interface {
	// CreateCar registers a new car. Duplicate plates are rejected.
	CreateCar(ctx context.Context, req dto.CreateCarRequest) (*domain.Car, error)

	// GetCarByPlate retrieves a car by its plate number.
	GetCarByPlate(ctx context.Context, plate string) (*domain.Car, error)

	// ListCars retrieves all cars, newest first.
	ListCars(ctx context.Context) ([]domain.Car, error)

	// StatusSummary returns the number of cars in each status.
	StatusSummary(ctx context.Context) (map[domain.CarStatus]int, error)

	// SetCarStatus moves a car to the given status outside the rental
	// lifecycle, e.g. into or out of maintenance.
	SetCarStatus(ctx context.Context, carID string, status domain.CarStatus) (*domain.Car, error)
}
