package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// IssueAuthorizationRequest defines the data needed to open an authorization.
// CarModel, CarType and DailyRent override the car's own values when supplied;
// StartDate defaults to the issue instant.
type IssueAuthorizationRequest struct {
	DriverName string           `json:"driverName" binding:"required"`
	CarNumber  string           `json:"carNumber" binding:"required"`
	CarModel   string           `json:"carModel"`
	CarType    string           `json:"carType"`
	StartDate  *FlexTime        `json:"startDate"`
	DailyRent  *decimal.Decimal `json:"dailyRent"`
	Details    string           `json:"details"`
}

// EndAuthorizationRequest is the transport shape for ending an authorization.
// Renew defaults to true and PostJournal to false when omitted.
type EndAuthorizationRequest struct {
	Renew        *bool            `json:"renew"`
	PostJournal  *bool            `json:"postJournal"`
	ClosingNote  string           `json:"closingNote"`
	ClosedAmount *decimal.Decimal `json:"closedAmount"`
}

// ToOptions resolves the optional flags into the strict options the service takes.
func (r EndAuthorizationRequest) ToOptions() EndAuthorizationOptions {
	opts := EndAuthorizationOptions{
		Renew:        true,
		PostJournal:  false,
		ClosingNote:  r.ClosingNote,
		ClosedAmount: r.ClosedAmount,
	}
	if r.Renew != nil {
		opts.Renew = *r.Renew
	}
	if r.PostJournal != nil {
		opts.PostJournal = *r.PostJournal
	}
	return opts
}

// EndAuthorizationOptions are the resolved, strictly-typed end options.
type EndAuthorizationOptions struct {
	Renew        bool
	PostJournal  bool
	ClosingNote  string
	ClosedAmount *decimal.Decimal
}

// ReceiptDraft is a pre-filled cash receipt suggestion returned by the end
// operation for the caller to optionally submit.
type ReceiptDraft struct {
	AuthorizationID string          `json:"authorizationID"`
	DriverID        string          `json:"driverID"`
	DriverName      string          `json:"driverName"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

// EndAuthorizationResult is the outcome of the end operation.
type EndAuthorizationResult struct {
	Closed       domain.Authorization  `json:"closed"`
	Renewal      *domain.Authorization `json:"renewal"`
	RentalDays   int                   `json:"rentalDays"`
	FinalAmount  decimal.Decimal       `json:"finalAmount"`
	ReceiptDraft ReceiptDraft          `json:"receiptDraft"`
}

// AuthorizationResponse defines the data returned for an authorization.
type AuthorizationResponse struct {
	AuthorizationID string                     `json:"authorizationID"`
	IssueDate       time.Time                  `json:"issueDate"`
	DriverName      string                     `json:"driverName"`
	DriverID        string                     `json:"driverID"`
	DriverLicenseNo string                     `json:"driverLicenseNo"`
	CarNumber       string                     `json:"carNumber"`
	CarModel        string                     `json:"carModel"`
	CarType         string                     `json:"carType"`
	StartDate       *time.Time                 `json:"startDate"`
	EndDate         time.Time                  `json:"endDate"`
	DailyRent       decimal.Decimal            `json:"dailyRent"`
	Details         string                     `json:"details"`
	Status          domain.AuthorizationStatus `json:"status"`
	CloseDate       *time.Time                 `json:"closeDate"`
	ClosedAmount    decimal.Decimal            `json:"closedAmount"`
	ClosingNote     string                     `json:"closingNote"`
	ClosureEntryID  string                     `json:"closureEntryID"`
}

// ToAuthorizationResponse converts a domain.Authorization to its DTO.
func ToAuthorizationResponse(a *domain.Authorization) AuthorizationResponse {
	return AuthorizationResponse{
		AuthorizationID: a.AuthorizationID,
		IssueDate:       a.IssueDate,
		DriverName:      a.DriverName,
		DriverID:        a.DriverID,
		DriverLicenseNo: a.DriverLicenseNo,
		CarNumber:       a.CarNumber,
		CarModel:        a.CarModel,
		CarType:         a.CarType,
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
		DailyRent:       a.DailyRent,
		Details:         a.Details,
		Status:          a.Status,
		CloseDate:       a.CloseDate,
		ClosedAmount:    a.ClosedAmount,
		ClosingNote:     a.ClosingNote,
		ClosureEntryID:  a.ClosureEntryID,
	}
}

// ToListAuthorizationResponse converts a slice of authorizations to DTOs.
func ToListAuthorizationResponse(auths []domain.Authorization) []AuthorizationResponse {
	res := make([]AuthorizationResponse, len(auths))
	for i := range auths {
		res[i] = ToAuthorizationResponse(&auths[i])
	}
	return res
}

// EndAuthorizationResponse is the transport shape of EndAuthorizationResult.
type EndAuthorizationResponse struct {
	Closed       AuthorizationResponse  `json:"closed"`
	Renewal      *AuthorizationResponse `json:"renewal"`
	RentalDays   int                    `json:"rentalDays"`
	FinalAmount  decimal.Decimal        `json:"finalAmount"`
	ReceiptDraft ReceiptDraft           `json:"receiptDraft"`
}

// ToEndAuthorizationResponse converts an EndAuthorizationResult to its transport shape.
func ToEndAuthorizationResponse(r *EndAuthorizationResult) EndAuthorizationResponse {
	resp := EndAuthorizationResponse{
		Closed:       ToAuthorizationResponse(&r.Closed),
		RentalDays:   r.RentalDays,
		FinalAmount:  r.FinalAmount,
		ReceiptDraft: r.ReceiptDraft,
	}
	if r.Renewal != nil {
		renewal := ToAuthorizationResponse(r.Renewal)
		resp.Renewal = &renewal
	}
	return resp
}
