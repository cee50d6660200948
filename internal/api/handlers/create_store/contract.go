package create_store

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/stores/models"
)

type StoreService interface {
	Create(ctx context.Context, req *models.CreateStoreRequest) (*models.StoreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
