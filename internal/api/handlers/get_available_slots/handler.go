package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgMissingStoreID          = "storeId query parameter is required and must be a number"
	msgMissingReservationType  = "reservationTypeId query parameter is required and must be a number"
	msgStoreNotFound           = "store not found"
	msgReservationTypeNotFound = "reservation type not found"
	msgNoQualifiedStaff        = "no staff is qualified for this reservation type at this store"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/reservations/available?storeId=&reservationTypeId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.ParseInt(r.URL.Query().Get("storeId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/available - Invalid storeId: %v", err)
		handlers.RespondBadRequest(w, msgMissingStoreID)
		return
	}

	reservationTypeID, err := strconv.ParseInt(r.URL.Query().Get("reservationTypeId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/available - Invalid reservationTypeId: %v", err)
		handlers.RespondBadRequest(w, msgMissingReservationType)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		StoreID:           storeID,
		ReservationTypeID: reservationTypeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStoreNotFound):
			h.logger.Warn("GET /reservations/available - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, getAvailableSlots.ErrReservationTypeNotFound):
			h.logger.Warn("GET /reservations/available - Reservation type not found: type_id=%d", reservationTypeID)
			handlers.RespondNotFound(w, msgReservationTypeNotFound)

		case errors.Is(err, getAvailableSlots.ErrNoQualifiedStaff):
			h.logger.Warn("GET /reservations/available - No qualified staff: store_id=%d, type_id=%d", storeID, reservationTypeID)
			handlers.RespondBadRequest(w, msgNoQualifiedStaff)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /reservations/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /reservations/available - Failed: store_id=%d, type_id=%d, error=%v",
				storeID, reservationTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
