package domain

import "github.com/shopspring/decimal"

// CarStatus is the availability state of a car in the fleet.
type CarStatus string

const (
	CarAvailable        CarStatus = "AVAILABLE"
	CarRented           CarStatus = "RENTED"
	CarUnderMaintenance CarStatus = "UNDER_MAINTENANCE"
)

// ValidCarStatus reports whether s is one of the known car statuses.
func ValidCarStatus(s CarStatus) bool {
	switch s {
	case CarAvailable, CarRented, CarUnderMaintenance:
		return true
	}
	return false
}

// Car represents a fleet vehicle. The plate is the business identity; status is
// mutated by the authorization lifecycle (rented on issue, available on a
// non-renewing close) or by direct administrative edit.
type Car struct {
	CarID     string          `json:"carID"`
	Plate     string          `json:"plate"`
	Model     string          `json:"model"`
	CarType   string          `json:"carType"`
	DailyRent decimal.Decimal `json:"dailyRent"` // 2 fractional digits, never negative
	Status    CarStatus       `json:"status"`
	AuditFields
}
