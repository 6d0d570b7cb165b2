package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
)

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for cash receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryWithTx {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceiptRepositoryWithTx = (*PgxReceiptRepository)(nil)

const receiptColumns = `receipt_id, receipt_date, driver_id, driver_name, amount, description, ref_authorization_id, entry_id, created_at, last_updated_at`

func scanReceipt(row pgx.Row) (*domain.CashReceipt, error) {
	var rec domain.CashReceipt
	var driverID, refAuthID sql.NullString
	err := row.Scan(
		&rec.ReceiptID,
		&rec.ReceiptDate,
		&driverID,
		&rec.DriverName,
		&rec.Amount,
		&rec.Description,
		&refAuthID,
		&rec.EntryID,
		&rec.CreatedAt,
		&rec.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan receipt: %w", err)
	}
	rec.DriverID = driverID.String
	rec.RefAuthorizationID = refAuthID.String
	return &rec, nil
}

func (r *PgxReceiptRepository) SaveReceiptInTx(ctx context.Context, tx pgx.Tx, receipt domain.CashReceipt) error {
	query := `
		INSERT INTO cash_receipts (receipt_id, receipt_date, driver_id, driver_name, amount, description, ref_authorization_id, entry_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		receipt.ReceiptID,
		receipt.ReceiptDate,
		nullable(receipt.DriverID),
		receipt.DriverName,
		receipt.Amount,
		receipt.Description,
		nullable(receipt.RefAuthorizationID),
		receipt.EntryID,
		receipt.CreatedAt,
		receipt.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: receipt %s already exists", apperrors.ErrDuplicate, receipt.ReceiptID)
		}
		return fmt.Errorf("failed to save receipt %s: %w", receipt.ReceiptID, err)
	}
	return nil
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.CashReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM cash_receipts WHERE receipt_id = $1;`
	return scanReceipt(r.Pool.QueryRow(ctx, query, receiptID))
}

func (r *PgxReceiptRepository) ListReceipts(ctx context.Context) ([]domain.CashReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM cash_receipts ORDER BY receipt_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	receipts := []domain.CashReceipt{}
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, *rec)
	}
	return receipts, rows.Err()
}
