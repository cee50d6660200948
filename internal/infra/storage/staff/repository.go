package staff

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository works with the staffs table and the qualification relation.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListQualified returns the staff of a store qualified for a reservation
// type, ordered by id so downstream tie-breaks are stable.
func (r *Repository) ListQualified(ctx context.Context, storeID, reservationTypeID int64) ([]*domain.Staff, error) {
	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.store_id",
		"s.name",
		"s.phone_number",
		"s.email",
		"s.created_at",
		"s.updated_at",
	).
		From("staffs s").
		Join("staff_reservation_types srt ON srt.staff_id = s.id").
		Where(squirrel.Eq{"s.store_id": storeID}).
		Where(squirrel.Eq{"srt.reservation_type_id": reservationTypeID}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListQualified - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListQualified - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staffs := make([]*domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.StoreID, &s.Name, &s.PhoneNumber, &s.Email, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListQualified - scan row: %v", ErrScanRow, err)
		}
		staffs = append(staffs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListQualified - rows error: %v", ErrScanRow, err)
	}

	return staffs, nil
}
