package list_reservation_types

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/reservationtypes/models"
)

type ReservationTypeService interface {
	List(ctx context.Context) (*models.ReservationTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
