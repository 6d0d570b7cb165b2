package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource classifies what produced a journal entry. Used for display and
// reporting only, never for behaviour branching.
type EntrySource string

const (
	SourceManual    EntrySource = "MANUAL"
	SourceReceipt   EntrySource = "RECEIPT"
	SourceAuthClose EntrySource = "AUTH_CLOSE"
)

// JournalEntry is a balanced double-entry bookkeeping record. Entries are
// immutable once created; there is no update or delete.
type JournalEntry struct {
	EntryID            string    `json:"entryID"`
	EntryDate          time.Time `json:"entryDate"`
	Description        string    `json:"description"`
	RefAuthorizationID string    `json:"refAuthorizationID"` // empty when not tied to a closure
	RefReceiptID       string    `json:"refReceiptID"`       // empty when not tied to a receipt
	AuditFields
}

// Source classifies the entry: receipt wins over closure, everything else is
// manual.
func (e JournalEntry) Source() EntrySource {
	if e.RefReceiptID != "" {
		return SourceReceipt
	}
	if e.RefAuthorizationID != "" {
		return SourceAuthClose
	}
	return SourceManual
}

// JournalLine debits or credits exactly one non-group account. At most one of
// Debit/Credit is non-zero. LineNo preserves insertion order for display.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	LineNo    int             `json:"lineNo"`
	AuditFields
}
