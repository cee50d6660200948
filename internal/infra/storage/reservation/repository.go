package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// SQLSTATE for exclusion_violation, raised by the
// reservations_staff_no_overlap constraint.
const pgExclusionViolation = "23P01"

// Repository works with the reservations table.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var reservationColumns = []string{
	"id",
	"store_id",
	"reservation_type_id",
	"staff_id",
	"user_email",
	"date",
	"start_time",
	"end_time",
	"status",
	"created_at",
	"updated_at",
}

// Create inserts a reservation. The insert races with concurrent ones for the
// same staff member; the exclusion constraint resolves that race, surfacing
// here as ErrDuplicateReservation.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"store_id",
			"reservation_type_id",
			"staff_id",
			"user_email",
			"date",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			res.StoreID,
			res.ReservationTypeID,
			res.StaffID,
			res.UserEmail,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgExclusionViolation {
			return nil, ErrDuplicateReservation
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID returns one reservation or ErrReservationNotFound.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID, &res.StoreID, &res.ReservationTypeID, &res.StaffID, &res.UserEmail,
		&res.Date, &res.StartTime, &res.EndTime, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return &res, nil
}

// List returns all reservations, newest date first.
func (r *Repository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("date DESC, start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListByStoreAndDate returns every reservation for a store on one calendar
// day regardless of reservation type, ordered by start time. Staff busy
// intervals are store-wide, so availability must see all of them.
func (r *Repository) ListByStoreAndDate(ctx context.Context, storeID int64, date time.Time) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"store_id": storeID}).
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStoreAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStoreAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// CountActiveByStaffIDs returns the number of non-canceled reservations per
// staff id. Staff without reservations are absent from the map.
func (r *Repository) CountActiveByStaffIDs(ctx context.Context, staffIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(staffIDs))
	if len(staffIDs) == 0 {
		return counts, nil
	}

	query, args, err := psqlbuilder.Select("staff_id", "COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"staff_id": staffIDs}).
		Where(squirrel.NotEq{"status": string(domain.StatusCanceled)}).
		GroupBy("staff_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveByStaffIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveByStaffIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var staffID int64
		var count int
		if err := rows.Scan(&staffID, &count); err != nil {
			return nil, fmt.Errorf("%w: CountActiveByStaffIDs - scan row: %v", ErrScanRow, err)
		}
		counts[staffID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountActiveByStaffIDs - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// Delete removes a reservation.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations scans query results into a slice of reservations.
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		err := rows.Scan(
			&res.ID, &res.StoreID, &res.ReservationTypeID, &res.StaffID, &res.UserEmail,
			&res.Date, &res.StartTime, &res.EndTime, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
