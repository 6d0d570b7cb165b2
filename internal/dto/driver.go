package dto

import "github.com/fleetops/car_rental_app/internal/core/domain"

// CreateDriverRequest defines the data needed to register a new driver.
type CreateDriverRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"licenseNo"`
	Notes     string `json:"notes"`
}

// DriverResponse defines the data returned for a driver.
type DriverResponse struct {
	DriverID  string `json:"driverID"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"licenseNo"`
	Notes     string `json:"notes"`
}

// ToDriverResponse converts a domain.Driver to a DriverResponse DTO.
func ToDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		DriverID:  d.DriverID,
		Name:      d.Name,
		Phone:     d.Phone,
		LicenseNo: d.LicenseNo,
		Notes:     d.Notes,
	}
}

// ToListDriverResponse converts a slice of domain.Driver to DriverResponse DTOs.
func ToListDriverResponse(drivers []domain.Driver) []DriverResponse {
	res := make([]DriverResponse, len(drivers))
	for i := range drivers {
		res[i] = ToDriverResponse(&drivers[i])
	}
	return res
}
