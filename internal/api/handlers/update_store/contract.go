package update_store

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/stores/models"
)

type StoreService interface {
	Update(ctx context.Context, id int64, req *models.UpdateStoreRequest) (*models.StoreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
