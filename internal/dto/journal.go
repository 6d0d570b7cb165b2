package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// ManualEntryLineRequest is one line of a manual journal entry. A line is
// either a debit line or a credit line; lines with both sides zero are dropped.
type ManualEntryLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateManualEntryRequest defines a free-form multi-line journal entry.
type CreateManualEntryRequest struct {
	Date        *FlexTime                `json:"date"`
	Description string                   `json:"description"`
	Lines       []ManualEntryLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	LineNo    int             `json:"lineNo"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID            string                `json:"entryID"`
	EntryDate          time.Time             `json:"entryDate"`
	Description        string                `json:"description"`
	Source             domain.EntrySource    `json:"source"`
	RefAuthorizationID string                `json:"refAuthorizationID"`
	RefReceiptID       string                `json:"refReceiptID"`
	Lines              []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalEntryResponse converts an entry and its lines to the response DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry, lines []domain.JournalLine) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:            entry.EntryID,
		EntryDate:          entry.EntryDate,
		Description:        entry.Description,
		Source:             entry.Source(),
		RefAuthorizationID: entry.RefAuthorizationID,
		RefReceiptID:       entry.RefReceiptID,
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, JournalLineResponse{
			LineID:    line.LineID,
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
			LineNo:    line.LineNo,
		})
	}
	return resp
}

// ToListJournalEntryResponse converts entries (without lines) to response DTOs.
func ToListJournalEntryResponse(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i], nil)
	}
	return res
}
