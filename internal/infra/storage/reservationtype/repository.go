package reservationtype

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

// Repository works with the reservation_types table.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var typeColumns = []string{
	"id",
	"name",
	"description",
	"default_minutes",
	"created_at",
	"updated_at",
}

// GetByID returns one reservation type or ErrTypeNotFound.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ReservationType, error) {
	query, args, err := psqlbuilder.Select(typeColumns...).
		From("reservation_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.ReservationType
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.Name, &t.Description, &t.DefaultMinutes, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation type: %v", ErrScanRow, err)
	}

	return &t, nil
}

// List returns all reservation types ordered by id.
func (r *Repository) List(ctx context.Context) ([]*domain.ReservationType, error) {
	query, args, err := psqlbuilder.Select(typeColumns...).
		From("reservation_types").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	typesList := make([]*domain.ReservationType, 0)
	for rows.Next() {
		var t domain.ReservationType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.DefaultMinutes, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		typesList = append(typesList, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return typesList, nil
}
