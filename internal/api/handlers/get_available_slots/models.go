package get_available_slots

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

// DaySlotsResponse is one calendar day with its bookable start times.
type DaySlotsResponse struct {
	Date  string   `json:"date"`  // "2025-10-15"
	Slots []string `json:"slots"` // ["10:00", "10:30", ...]
}

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	AvailableSlots []DaySlotsResponse `json:"availableSlots"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]DaySlotsResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]string, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, string(slot))
		}
		days = append(days, DaySlotsResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		})
	}
	return &AvailableSlotsResponse{AvailableSlots: days}
}
