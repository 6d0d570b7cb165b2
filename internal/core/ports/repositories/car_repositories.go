package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// CarReader defines read operations for car data.
type CarReader interface {
	// FindCarByID retrieves a car by its unique identifier.
	FindCarByID(ctx context.Context, carID string) (*domain.Car, error)

	// FindCarByPlate retrieves a car by its plate number.
	FindCarByPlate(ctx context.Context, plate string) (*domain.Car, error)

	// ListCars retrieves all cars, newest first.
	ListCars(ctx context.Context) ([]domain.Car, error)

	// CountCarsByStatus returns the number of cars per status.
	CountCarsByStatus(ctx context.Context) (map[domain.CarStatus]int, error)
}

// CarWriter defines write operations for car data.
type CarWriter interface {
	// SaveCar persists a new car.
	SaveCar(ctx context.Context, car domain.Car) error

	// UpdateCarStatus updates a car's status outside of any surrounding transaction.
	UpdateCarStatus(ctx context.Context, carID string, status domain.CarStatus, now time.Time) error
}

// CarTransactionSupport defines car operations that participate in a caller-owned transaction.
type CarTransactionSupport interface {
	// UpdateCarStatusInTx updates a car's status within the given transaction.
	UpdateCarStatusInTx(ctx context.Context, tx pgx.Tx, carID string, status domain.CarStatus, now time.Time) error
}

// CarRepositoryFacade combines all car-related repository interfaces.
type CarRepositoryFacade interface {
	CarReader
	CarWriter
	CarTransactionSupport
}
