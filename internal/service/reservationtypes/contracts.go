package reservationtypes

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationTypeRepository is the reservation type persistence surface.
type ReservationTypeRepository interface {
	List(ctx context.Context) ([]*domain.ReservationType, error)
}

// Logger is the logging surface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
