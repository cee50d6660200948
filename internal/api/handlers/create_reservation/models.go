package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	StoreID           int64  `json:"storeId" validate:"required,gt=0"`
	ReservationTypeID int64  `json:"reservationTypeId" validate:"required,gt=0"`
	UserEmail         string `json:"userEmail" validate:"required,email"`
	Date              string `json:"date" validate:"required"`      // "2025-10-15"
	StartTime         string `json:"startTime" validate:"required"` // "10:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                int64  `json:"id"`
	StoreID           int64  `json:"storeId"`
	ReservationTypeID int64  `json:"reservationTypeId"`
	StaffID           int64  `json:"staffId"`
	UserEmail         string `json:"userEmail"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Status            string `json:"status"`
	CreatedAt         string `json:"createdAt"`
}

// ToUseCaseRequest parses the date and time fields into the use case model.
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		StoreID:           r.StoreID,
		ReservationTypeID: r.ReservationTypeID,
		UserEmail:         r.UserEmail,
		Date:              date,
		StartTime:         startTime,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                resp.ID,
		StoreID:           resp.StoreID,
		ReservationTypeID: resp.ReservationTypeID,
		StaffID:           resp.StaffID,
		UserEmail:         resp.UserEmail,
		Date:              resp.Date.Format(domain.DateFormat),
		StartTime:         resp.StartTime.Format(domain.TimeFormat),
		EndTime:           resp.EndTime.Format(domain.TimeFormat),
		Status:            resp.Status,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
