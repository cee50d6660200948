package businesshours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository works with the store_business_hours table.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStoreAndWeekday returns the single hours row for (store, weekday),
// 0 = Sunday .. 6 = Saturday, or ErrHoursNotFound.
func (r *Repository) GetByStoreAndWeekday(ctx context.Context, storeID int64, dayOfWeek int) (*domain.StoreBusinessHour, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"store_id",
		"day_of_week",
		"is_closed",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("store_business_hours").
		Where(squirrel.Eq{"store_id": storeID, "day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStoreAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.StoreBusinessHour
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&h.ID, &h.StoreID, &h.DayOfWeek, &h.IsClosed, &h.StartTime, &h.EndTime, &h.CreatedAt, &h.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStoreAndWeekday - scan hours: %v", ErrScanRow, err)
	}

	return &h, nil
}
