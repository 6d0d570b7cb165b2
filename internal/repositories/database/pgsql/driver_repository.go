package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
)

type PgxDriverRepository struct {
	pool *pgxpool.Pool
}

// newPgxDriverRepository creates a new repository for driver data.
func newPgxDriverRepository(pool *pgxpool.Pool) portsrepo.DriverRepositoryFacade {
	return &PgxDriverRepository{pool: pool}
}

var _ portsrepo.DriverRepositoryFacade = (*PgxDriverRepository)(nil)

const driverColumns = `driver_id, name, phone, license_no, notes, created_at, last_updated_at`

func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var d domain.Driver
	err := row.Scan(
		&d.DriverID,
		&d.Name,
		&d.Phone,
		&d.LicenseNo,
		&d.Notes,
		&d.CreatedAt,
		&d.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan driver: %w", err)
	}
	return &d, nil
}

func (r *PgxDriverRepository) SaveDriver(ctx context.Context, driver domain.Driver) error {
	query := `
		INSERT INTO drivers (driver_id, name, phone, license_no, notes, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		driver.DriverID,
		driver.Name,
		driver.Phone,
		driver.LicenseNo,
		driver.Notes,
		driver.CreatedAt,
		driver.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: driver named %s already exists", apperrors.ErrDuplicate, driver.Name)
		}
		return fmt.Errorf("failed to save driver %s: %w", driver.DriverID, err)
	}
	return nil
}

func (r *PgxDriverRepository) FindDriverByID(ctx context.Context, driverID string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1;`
	return scanDriver(r.pool.QueryRow(ctx, query, driverID))
}

func (r *PgxDriverRepository) FindDriverByName(ctx context.Context, name string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE name = $1;`
	return scanDriver(r.pool.QueryRow(ctx, query, name))
}

func (r *PgxDriverRepository) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY created_at DESC, driver_id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer rows.Close()

	drivers := []domain.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, *d)
	}
	return drivers, rows.Err()
}
