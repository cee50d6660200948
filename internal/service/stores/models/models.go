package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request models

// CreateStoreRequest carries the fields for a new store.
type CreateStoreRequest struct {
	StoreName   string `json:"storeName"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// UpdateStoreRequest carries the fields to update. Nil fields keep
// their current value.
type UpdateStoreRequest struct {
	StoreName   *string `json:"storeName,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// Response models

// StoreResponse is the API representation of a store.
type StoreResponse struct {
	ID          int64  `json:"id"`
	StoreName   string `json:"storeName"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// StoreListResponse wraps a list of stores.
type StoreListResponse struct {
	Stores []StoreResponse `json:"stores"`
}

// FromDomainStore converts a domain store to its API representation.
func FromDomainStore(s *domain.Store) *StoreResponse {
	return &StoreResponse{
		ID:          s.ID,
		StoreName:   s.StoreName,
		Address:     s.Address,
		PhoneNumber: s.PhoneNumber,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainStoreList converts a slice of domain stores.
func FromDomainStoreList(stores []*domain.Store) *StoreListResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, *FromDomainStore(s))
	}
	return &StoreListResponse{Stores: out}
}
