package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthorizationStatus is the lifecycle state of an authorization.
type AuthorizationStatus string

const (
	AuthorizationOpen   AuthorizationStatus = "RENTED"
	AuthorizationClosed AuthorizationStatus = "ENDED"
)

// Authorization links a driver to a car for one billing interval.
//
// CarNumber is a deliberate soft reference to Car.Plate: model, type and daily
// rent are snapshotted at issue time so the history survives car deletion or a
// plate typo. EndDate is the planned billing boundary (the upcoming Friday,
// end of day) fixed at issue time; CloseDate is the actual closure instant.
// An authorization is open exactly while CloseDate is nil.
type Authorization struct {
	AuthorizationID string              `json:"authorizationID"`
	IssueDate       time.Time           `json:"issueDate"`
	DriverName      string              `json:"driverName"`
	DriverID        string              `json:"driverID"` // optional link to a Driver record
	DriverLicenseNo string              `json:"driverLicenseNo"`
	CarNumber       string              `json:"carNumber"`
	CarModel        string              `json:"carModel"`
	CarType         string              `json:"carType"`
	StartDate       *time.Time          `json:"startDate"` // effective rental start; IssueDate when nil
	EndDate         time.Time           `json:"endDate"`   // planned boundary, basis for billing
	DailyRent       decimal.Decimal     `json:"dailyRent"`
	Details         string              `json:"details"`
	Status          AuthorizationStatus `json:"status"`
	CloseDate       *time.Time          `json:"closeDate"`
	ClosedAmount    decimal.Decimal     `json:"closedAmount"`
	ClosingNote     string              `json:"closingNote"`
	ClosureEntryID  string              `json:"closureEntryID"` // journal entry posted on close, if any
	AuditFields
}

// EffectiveStart returns the start used for billing: StartDate when supplied at
// issue time, otherwise the issue instant.
func (a Authorization) EffectiveStart() time.Time {
	if a.StartDate != nil {
		return *a.StartDate
	}
	return a.IssueDate
}

// IsOpen reports whether the authorization has not been closed yet.
func (a Authorization) IsOpen() bool {
	return a.CloseDate == nil
}
