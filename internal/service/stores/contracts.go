package stores

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// StoreRepository is the store persistence surface.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) (*domain.Store, error)
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
