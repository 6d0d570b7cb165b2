package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// CreateCarRequest defines the data needed to register a new car.
type CreateCarRequest struct {
	Plate     string            `json:"plate" binding:"required"`
	Model     string            `json:"model"`
	CarType   string            `json:"carType"`
	DailyRent *decimal.Decimal  `json:"dailyRent"` // defaults to 0.00
	Status    *domain.CarStatus `json:"status" binding:"omitempty,oneof=AVAILABLE RENTED UNDER_MAINTENANCE"`
}

// UpdateCarStatusRequest moves a car to a new status outside the rental lifecycle.
type UpdateCarStatusRequest struct {
	Status domain.CarStatus `json:"status" binding:"required,oneof=AVAILABLE RENTED UNDER_MAINTENANCE"`
}

// CarResponse defines the data returned for a car.
type CarResponse struct {
	CarID     string           `json:"carID"`
	Plate     string           `json:"plate"`
	Model     string           `json:"model"`
	CarType   string           `json:"carType"`
	DailyRent decimal.Decimal  `json:"dailyRent"`
	Status    domain.CarStatus `json:"status"`
}

// CarStatusSummaryResponse reports the fleet size per status.
type CarStatusSummaryResponse struct {
	Available        int `json:"available"`
	Rented           int `json:"rented"`
	UnderMaintenance int `json:"underMaintenance"`
	Total            int `json:"total"`
}

// ToCarResponse converts a domain.Car to a CarResponse DTO.
func ToCarResponse(car *domain.Car) CarResponse {
	return CarResponse{
		CarID:     car.CarID,
		Plate:     car.Plate,
		Model:     car.Model,
		CarType:   car.CarType,
		DailyRent: car.DailyRent,
		Status:    car.Status,
	}
}

// ToListCarResponse converts a slice of domain.Car to CarResponse DTOs.
func ToListCarResponse(cars []domain.Car) []CarResponse {
	res := make([]CarResponse, len(cars))
	for i := range cars {
		res[i] = ToCarResponse(&cars[i])
	}
	return res
}
