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

// openAuthIndexName is the partial unique index serializing one open
// authorization per car at the store level.
const openAuthIndexName = "uq_authorizations_open_car"

type PgxAuthorizationRepository struct {
	BaseRepository
}

// newPgxAuthorizationRepository creates a new repository for authorization data.
func newPgxAuthorizationRepository(pool *pgxpool.Pool) portsrepo.AuthorizationRepositoryWithTx {
	return &PgxAuthorizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuthorizationRepositoryWithTx = (*PgxAuthorizationRepository)(nil)

const authorizationColumns = `authorization_id, issue_date, driver_name, driver_id, driver_license_no,
	car_number, car_model, car_type, start_date, end_date, daily_rent, details, status,
	close_date, closed_amount, closing_note, closure_entry_id, created_at, last_updated_at`

func scanAuthorization(row pgx.Row) (*domain.Authorization, error) {
	var auth domain.Authorization
	var driverID, closingNote, closureEntryID sql.NullString
	err := row.Scan(
		&auth.AuthorizationID,
		&auth.IssueDate,
		&auth.DriverName,
		&driverID,
		&auth.DriverLicenseNo,
		&auth.CarNumber,
		&auth.CarModel,
		&auth.CarType,
		&auth.StartDate,
		&auth.EndDate,
		&auth.DailyRent,
		&auth.Details,
		&auth.Status,
		&auth.CloseDate,
		&auth.ClosedAmount,
		&closingNote,
		&closureEntryID,
		&auth.CreatedAt,
		&auth.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan authorization: %w", err)
	}
	auth.DriverID = driverID.String
	auth.ClosingNote = closingNote.String
	auth.ClosureEntryID = closureEntryID.String
	return &auth, nil
}

// SaveAuthorizationInTx inserts a new authorization. Losing the race for a
// car's single open slot trips the partial unique index and is reported as
// ErrConflict, matching the service's up-front check.
func (r *PgxAuthorizationRepository) SaveAuthorizationInTx(ctx context.Context, tx pgx.Tx, auth domain.Authorization) error {
	query := `
		INSERT INTO authorizations (authorization_id, issue_date, driver_name, driver_id, driver_license_no,
			car_number, car_model, car_type, start_date, end_date, daily_rent, details, status,
			close_date, closed_amount, closing_note, closure_entry_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := tx.Exec(ctx, query,
		auth.AuthorizationID,
		auth.IssueDate,
		auth.DriverName,
		nullable(auth.DriverID),
		auth.DriverLicenseNo,
		auth.CarNumber,
		auth.CarModel,
		auth.CarType,
		auth.StartDate,
		auth.EndDate,
		auth.DailyRent,
		auth.Details,
		auth.Status,
		auth.CloseDate,
		auth.ClosedAmount,
		nullable(auth.ClosingNote),
		nullable(auth.ClosureEntryID),
		auth.CreatedAt,
		auth.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == openAuthIndexName {
				return fmt.Errorf("%w: car %s already has an open authorization", apperrors.ErrConflict, auth.CarNumber)
			}
			return fmt.Errorf("%w: authorization %s already exists", apperrors.ErrDuplicate, auth.AuthorizationID)
		}
		return fmt.Errorf("failed to save authorization %s: %w", auth.AuthorizationID, err)
	}
	return nil
}

// CloseAuthorizationInTx persists the closure fields. The close_date IS NULL
// guard makes a double close lose cleanly even across processes.
func (r *PgxAuthorizationRepository) CloseAuthorizationInTx(ctx context.Context, tx pgx.Tx, auth domain.Authorization) error {
	query := `
		UPDATE authorizations
		SET status = $2, close_date = $3, end_date = $4, closed_amount = $5, closing_note = $6,
			closure_entry_id = $7, last_updated_at = $8
		WHERE authorization_id = $1 AND close_date IS NULL;
	`
	tag, err := tx.Exec(ctx, query,
		auth.AuthorizationID,
		auth.Status,
		auth.CloseDate,
		auth.EndDate,
		auth.ClosedAmount,
		nullable(auth.ClosingNote),
		nullable(auth.ClosureEntryID),
		auth.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to close authorization %s: %w", auth.AuthorizationID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: authorization %s is not open", apperrors.ErrConflict, auth.AuthorizationID)
	}
	return nil
}

func (r *PgxAuthorizationRepository) FindAuthorizationByID(ctx context.Context, authorizationID string) (*domain.Authorization, error) {
	query := `SELECT ` + authorizationColumns + ` FROM authorizations WHERE authorization_id = $1;`
	return scanAuthorization(r.Pool.QueryRow(ctx, query, authorizationID))
}

func (r *PgxAuthorizationRepository) FindOpenByCarNumber(ctx context.Context, carNumber string) (*domain.Authorization, error) {
	query := `SELECT ` + authorizationColumns + ` FROM authorizations WHERE car_number = $1 AND close_date IS NULL;`
	return scanAuthorization(r.Pool.QueryRow(ctx, query, carNumber))
}

func (r *PgxAuthorizationRepository) ListAuthorizations(ctx context.Context, onlyOpen bool) ([]domain.Authorization, error) {
	query := `SELECT ` + authorizationColumns + ` FROM authorizations`
	if onlyOpen {
		query += ` WHERE close_date IS NULL`
	}
	query += ` ORDER BY issue_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authorizations: %w", err)
	}
	defer rows.Close()

	auths := []domain.Authorization{}
	for rows.Next() {
		auth, err := scanAuthorization(rows)
		if err != nil {
			return nil, err
		}
		auths = append(auths, *auth)
	}
	return auths, rows.Err()
}
