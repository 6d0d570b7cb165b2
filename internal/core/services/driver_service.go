package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/core/ports"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
	portssvc "github.com/fleetops/car_rental_app/internal/core/ports/services"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// driverService provides the driver registry operations.
type driverService struct {
	driverRepo portsrepo.DriverRepositoryFacade
	clock      ports.Clock
}

// NewDriverService creates a new driver service.
func NewDriverService(driverRepo portsrepo.DriverRepositoryFacade, clock ports.Clock) portssvc.DriverSvcFacade {
	return &driverService{driverRepo: driverRepo, clock: clock}
}

var _ portssvc.DriverSvcFacade = (*driverService)(nil)

func (s *driverService) CreateDriver(ctx context.Context, req dto.CreateDriverRequest) (*domain.Driver, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: driver name is required", apperrors.ErrValidation)
	}

	if existing, err := s.driverRepo.FindDriverByName(ctx, name); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: driver %s is already registered", apperrors.ErrDuplicate, name)
	}

	now := s.clock.Now()
	driver := domain.Driver{
		DriverID:  uuid.NewString(),
		Name:      name,
		Phone:     req.Phone,
		LicenseNo: req.LicenseNo,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.driverRepo.SaveDriver(ctx, driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *driverService) GetDriverByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	return s.driverRepo.FindDriverByID(ctx, driverID)
}

func (s *driverService) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	return s.driverRepo.ListDrivers(ctx)
}
