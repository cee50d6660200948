package stores

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	storeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/store"
	"github.com/m04kA/SMC-ReservationService/internal/service/stores/models"
)

// Service manages stores.
type Service struct {
	storeRepo StoreRepository
	logger    Logger
}

// NewService creates a store service.
func NewService(storeRepo StoreRepository, logger Logger) *Service {
	return &Service{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// Create registers a new store.
func (s *Service) Create(ctx context.Context, req *models.CreateStoreRequest) (*models.StoreResponse, error) {
	if req.StoreName == "" {
		return nil, fmt.Errorf("%w: storeName is required", ErrInvalidInput)
	}

	created, err := s.storeRepo.Create(ctx, &domain.Store{
		StoreName:   req.StoreName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: store id=%d created", created.ID)
	return models.FromDomainStore(created), nil
}

// GetByID fetches a single store.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.StoreResponse, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("GetByID: store id=%d not found", id)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("GetByID: repository error for store id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStore(store), nil
}

// List returns all stores.
func (s *Service) List(ctx context.Context) (*models.StoreListResponse, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStoreList(stores), nil
}

// Update applies the provided fields to an existing store.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateStoreRequest) (*models.StoreResponse, error) {
	current, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("Update: store id=%d not found", id)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("Update: repository error for store id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.StoreName != nil {
		if *req.StoreName == "" {
			return nil, fmt.Errorf("%w: storeName must not be empty", ErrInvalidInput)
		}
		current.StoreName = *req.StoreName
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		current.PhoneNumber = *req.PhoneNumber
	}

	updated, err := s.storeRepo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			return nil, ErrStoreNotFound
		}
		s.logger.Error("Update: repository error for store id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: store id=%d updated", id)
	return models.FromDomainStore(updated), nil
}

// Delete removes a store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.storeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("Delete: store id=%d not found", id)
			return ErrStoreNotFound
		}
		s.logger.Error("Delete: repository error for store id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: store id=%d deleted", id)
	return nil
}
