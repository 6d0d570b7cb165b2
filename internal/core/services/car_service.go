package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/core/ports"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// carService provides the car registry operations.
type carService struct {
	carRepo portsrepo.CarRepositoryFacade
	clock   ports.Clock
}

// NewCarService creates a new car service.
func NewCarService(carRepo portsrepo.CarRepositoryFacade, clock ports.Clock) portssvc.CarSvcFacade {
	return &carService{carRepo: carRepo, clock: clock}
}

var _ portssvc.CarSvcFacade = (*carService)(nil)

func (s *carService) CreateCar(ctx context.Context, req dto.CreateCarRequest) (*domain.Car, error) {
	plate := strings.TrimSpace(req.Plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: plate is required", apperrors.ErrValidation)
	}

	rent := decimal.Zero
	if req.DailyRent != nil {
		if req.DailyRent.IsNegative() {
			return nil, fmt.Errorf("%w: invalid rent value", apperrors.ErrValidation)
		}
		rent = *req.DailyRent
	}
	rent = rent.Round(2)

	status := domain.CarAvailable
	if req.Status != nil {
		if !domain.ValidCarStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown car status %q", apperrors.ErrValidation, *req.Status)
		}
		status = *req.Status
	}

	if existing, err := s.carRepo.FindCarByPlate(ctx, plate); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: car %s is already registered", apperrors.ErrDuplicate, plate)
	}

	now := s.clock.Now()
	car := domain.Car{
		CarID:     uuid.NewString(),
		Plate:     plate,
		Model:     req.Model,
		CarType:   req.CarType,
		DailyRent: rent,
		Status:    status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// The unique constraint on plate closes the check-then-insert race; the
	// repository surfaces that as ErrDuplicate too.
	if err := s.carRepo.SaveCar(ctx, car); err != nil {
		return nil, err
	}
	return &car, nil
}

func (s *carService) GetCarByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	return s.carRepo.FindCarByPlate(ctx, plate)
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.ListCars(ctx)
}

func (s *carService) SetCarStatus(ctx context.Context, carID string, status domain.CarStatus) (*domain.Car, error) {
	if !domain.ValidCarStatus(status) {
		return nil, fmt.Errorf("%w: unknown car status %q", apperrors.ErrValidation, status)
	}

	car, err := s.carRepo.FindCarByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.carRepo.UpdateCarStatus(ctx, car.CarID, status, now); err != nil {
		return nil, err
	}

	updated := *car
	updated.Status = status
	updated.LastUpdatedAt = now
	return &updated, nil
}

func (s *carService) StatusSummary(ctx context.Context) (map[domain.CarStatus]int, error) {
	counts, err := s.carRepo.CountCarsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	// Report zero explicitly for statuses with no cars.
	for _, status := range []domain.CarStatus{domain.CarAvailable, domain.CarRented, domain.CarUnderMaintenance} {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}
	return counts, nil
}
