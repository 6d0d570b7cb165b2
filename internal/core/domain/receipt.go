package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashReceipt records a cash collection from a driver. Creating a receipt
// always posts exactly one journal entry in the same transaction; the two are
// never persisted apart. Receipts are immutable after creation.
type CashReceipt struct {
	ReceiptID          string          `json:"receiptID"`
	ReceiptDate        time.Time       `json:"receiptDate"`
	DriverID           string          `json:"driverID"`
	DriverName         string          `json:"driverName"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	RefAuthorizationID string          `json:"refAuthorizationID"` // informational link only
	EntryID            string          `json:"entryID"`            // the journal entry posted with the receipt
	AuditFields
}
