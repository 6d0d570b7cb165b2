package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a chart-of-accounts node.
type CreateAccountRequest struct {
	Name            string             `json:"name" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	IsGroup         bool               `json:"isGroup"`
	ParentAccountID *string            `json:"parentAccountID"`
	RelatedDriverID *string            `json:"relatedDriverID"`
	RelatedCarID    *string            `json:"relatedCarID"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	IsGroup         bool               `json:"isGroup"`
	ParentAccountID string             `json:"parentAccountID"`
	RelatedDriverID string             `json:"relatedDriverID"`
	RelatedCarID    string             `json:"relatedCarID"`
}

// LedgerRow is one line of an account's ledger report. Balance is debit-normal:
// debits increase it, credits decrease it; callers interpret the sign per
// account type.
type LedgerRow struct {
	EntryID     string             `json:"entryID"`
	EntryDate   time.Time          `json:"entryDate"`
	Description string             `json:"description"`
	Source      domain.EntrySource `json:"source"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
	Balance     decimal.Decimal    `json:"balance"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		IsGroup:         acc.IsGroup,
		ParentAccountID: acc.ParentAccountID,
		RelatedDriverID: acc.RelatedDriverID,
		RelatedCarID:    acc.RelatedCarID,
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
