package list_stores

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/stores/models"
)

type StoreService interface {
	List(ctx context.Context) (*models.StoreListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
