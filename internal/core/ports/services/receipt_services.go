package services

import (
	"context"

	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// ReceiptSvcFacade exposes the cash receipt manager.
type ReceiptSvcFacade interface {
	// CreateReceipt records a cash collection and posts its journal entry in
	// the same transaction.
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.CashReceipt, error)

	// ListReceipts retrieves all receipts, newest first.
	ListReceipts(ctx context.Context) ([]domain.CashReceipt, error)
}
