package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// ReceiptReader defines read operations for cash receipt data.
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt by its unique identifier.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.CashReceipt, error)

	// ListReceipts retrieves all receipts, newest first.
	ListReceipts(ctx context.Context) ([]domain.CashReceipt, error)
}

// ReceiptTransactionSupport defines receipt writes that participate in a
// caller-owned transaction. A receipt is only ever inserted together with its
// journal entry, so there is no standalone write variant.
type ReceiptTransactionSupport interface {
	// SaveReceiptInTx inserts a new receipt within the given transaction.
	SaveReceiptInTx(ctx context.Context, tx pgx.Tx, receipt domain.CashReceipt) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptTransactionSupport
}

// ReceiptRepositoryWithTx extends ReceiptRepositoryFacade with transaction management.
type ReceiptRepositoryWithTx interface {
	ReceiptRepositoryFacade
	TransactionManager
}
