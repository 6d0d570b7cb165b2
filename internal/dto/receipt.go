package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// CreateReceiptRequest defines the data needed to record a cash collection.
// The driver is resolved by ID first, then by name. The authorization link is
// informational only.
type CreateReceiptRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Description     string          `json:"description"`
	DriverID        string          `json:"driverID"`
	DriverName      string          `json:"driverName"`
	AuthorizationID string          `json:"authorizationID"`
	Date            *FlexTime       `json:"date"`
}

// ReceiptResponse defines the data returned for a cash receipt.
type ReceiptResponse struct {
	ReceiptID          string          `json:"receiptID"`
	ReceiptDate        time.Time       `json:"receiptDate"`
	DriverID           string          `json:"driverID"`
	DriverName         string          `json:"driverName"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	RefAuthorizationID string          `json:"refAuthorizationID"`
	EntryID            string          `json:"entryID"`
}

// ToReceiptResponse converts a domain.CashReceipt to a ReceiptResponse DTO.
func ToReceiptResponse(r *domain.CashReceipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:          r.ReceiptID,
		ReceiptDate:        r.ReceiptDate,
		DriverID:           r.DriverID,
		DriverName:         r.DriverName,
		Amount:             r.Amount,
		Description:        r.Description,
		RefAuthorizationID: r.RefAuthorizationID,
		EntryID:            r.EntryID,
	}
}

// ToListReceiptResponse converts a slice of receipts to ReceiptResponse DTOs.
func ToListReceiptResponse(receipts []domain.CashReceipt) []ReceiptResponse {
	res := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		res[i] = ToReceiptResponse(&receipts[i])
	}
	return res
}
