package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetops/car_rental_app/internal/apperrors"
	"github.com/fleetops/car_rental_app/internal/core/domain"
	portsrepo "github.com/fleetops/car_rental_app/internal/core/ports/repositories"
)

type PgxCarRepository struct {
	pool *pgxpool.Pool
}

// newPgxCarRepository creates a new repository for car data.
func newPgxCarRepository(pool *pgxpool.Pool) portsrepo.CarRepositoryFacade {
	return &PgxCarRepository{pool: pool}
}

var _ portsrepo.CarRepositoryFacade = (*PgxCarRepository)(nil)

const carColumns = `car_id, plate, model, car_type, daily_rent, status, created_at, last_updated_at`

func scanCar(row pgx.Row) (*domain.Car, error) {
	var car domain.Car
	err := row.Scan(
		&car.CarID,
		&car.Plate,
		&car.Model,
		&car.CarType,
		&car.DailyRent,
		&car.Status,
		&car.CreatedAt,
		&car.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan car: %w", err)
	}
	return &car, nil
}

func (r *PgxCarRepository) SaveCar(ctx context.Context, car domain.Car) error {
	query := `
		INSERT INTO cars (car_id, plate, model, car_type, daily_rent, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		car.CarID,
		car.Plate,
		car.Model,
		car.CarType,
		car.DailyRent,
		car.Status,
		car.CreatedAt,
		car.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: car with plate %s already exists", apperrors.ErrDuplicate, car.Plate)
		}
		return fmt.Errorf("failed to save car %s: %w", car.CarID, err)
	}
	return nil
}

func (r *PgxCarRepository) FindCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE car_id = $1;`
	return scanCar(r.pool.QueryRow(ctx, query, carID))
}

func (r *PgxCarRepository) FindCarByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE plate = $1;`
	return scanCar(r.pool.QueryRow(ctx, query, plate))
}

func (r *PgxCarRepository) ListCars(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY created_at DESC, car_id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	cars := []domain.Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *car)
	}
	return cars, rows.Err()
}

func (r *PgxCarRepository) CountCarsByStatus(ctx context.Context) (map[domain.CarStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM cars GROUP BY status;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count cars by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.CarStatus]int)
	for rows.Next() {
		var status domain.CarStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *PgxCarRepository) UpdateCarStatus(ctx context.Context, carID string, status domain.CarStatus, now time.Time) error {
	return r.updateStatus(ctx, r.pool, carID, status, now)
}

func (r *PgxCarRepository) UpdateCarStatusInTx(ctx context.Context, tx pgx.Tx, carID string, status domain.CarStatus, now time.Time) error {
	return r.updateStatus(ctx, tx, carID, status, now)
}

// execer abstracts the pool and a transaction for single-statement writes.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *PgxCarRepository) updateStatus(ctx context.Context, db execer, carID string, status domain.CarStatus, now time.Time) error {
	query := `UPDATE cars SET status = $2, last_updated_at = $3 WHERE car_id = $1;`
	tag, err := db.Exec(ctx, query, carID, status, now)
	if err != nil {
		return fmt.Errorf("failed to update status of car %s: %w", carID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: car %s", apperrors.ErrNotFound, carID)
	}
	return nil
}
