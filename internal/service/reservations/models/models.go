package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationResponse is the API representation of a reservation.
type ReservationResponse struct {
	ID                int64  `json:"id"`
	StoreID           int64  `json:"storeId"`
	ReservationTypeID int64  `json:"reservationTypeId"`
	StaffID           int64  `json:"staffId"`
	UserEmail         string `json:"userEmail"`
	Date              string `json:"date"`      // "2025-10-15"
	StartTime         string `json:"startTime"` // "10:00"
	EndTime           string `json:"endTime"`   // "10:30"
	Status            string `json:"status"`
	CreatedAt         string `json:"createdAt"`
}

// ReservationListResponse wraps a list of reservations.
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation converts a domain reservation to its API representation.
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                r.ID,
		StoreID:           r.StoreID,
		ReservationTypeID: r.ReservationTypeID,
		StaffID:           r.StaffID,
		UserEmail:         r.UserEmail,
		Date:              r.Date.Format(domain.DateFormat),
		StartTime:         r.StartTime.Format(domain.TimeFormat),
		EndTime:           r.EndTime.Format(domain.TimeFormat),
		Status:            string(r.Status),
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList converts a slice of domain reservations.
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out}
}
