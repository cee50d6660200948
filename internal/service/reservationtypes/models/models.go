package models

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// ReservationTypeResponse is the API representation of a reservation type.
type ReservationTypeResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	DefaultMinutes int    `json:"defaultMinutes"`
}

// ReservationTypeListResponse wraps a list of reservation types.
type ReservationTypeListResponse struct {
	ReservationTypes []ReservationTypeResponse `json:"reservationTypes"`
}

// FromDomainReservationTypeList converts a slice of domain reservation types.
func FromDomainReservationTypeList(types []*domain.ReservationType) *ReservationTypeListResponse {
	out := make([]ReservationTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, ReservationTypeResponse{
			ID:             t.ID,
			Name:           t.Name,
			Description:    t.Description,
			DefaultMinutes: t.DefaultMinutes,
		})
	}
	return &ReservationTypeListResponse{ReservationTypes: out}
}
