package reservationtypes

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/service/reservationtypes/models"
)

// Service exposes the reservation type catalogue.
type Service struct {
	rtypeRepo ReservationTypeRepository
	logger    Logger
}

// NewService creates a reservation type service.
func NewService(rtypeRepo ReservationTypeRepository, logger Logger) *Service {
	return &Service{
		rtypeRepo: rtypeRepo,
		logger:    logger,
	}
}

// List returns all reservation types.
func (s *Service) List(ctx context.Context) (*models.ReservationTypeListResponse, error) {
	types, err := s.rtypeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationTypeList(types), nil
}
