package create_reservation

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody      = "invalid request body"
	msgInvalidDateOrTime       = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgStoreNotFound           = "store not found"
	msgReservationTypeNotFound = "reservation type not found"
	msgStoreClosed             = "store is closed on the requested date"
	msgInvalidSlot             = "requested time is not a valid slot"
	msgNoQualifiedStaff        = "no qualified staff is available for this slot"
	msgSlotTaken               = "the requested slot has just been taken"
	msgPastDate                = "reservation date must not be in the past"
)

type Handler struct {
	useCase  CreateReservationUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrStoreNotFound):
			h.logger.Warn("POST /reservations - Store not found: store_id=%d", req.StoreID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, createReservation.ErrReservationTypeNotFound):
			h.logger.Warn("POST /reservations - Reservation type not found: type_id=%d", req.ReservationTypeID)
			handlers.RespondNotFound(w, msgReservationTypeNotFound)

		case errors.Is(err, createReservation.ErrStoreClosed):
			h.logger.Warn("POST /reservations - Store closed: store_id=%d, date=%s", req.StoreID, req.Date)
			handlers.RespondBadRequest(w, msgStoreClosed)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /reservations - Invalid slot: store_id=%d, start=%s", req.StoreID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrNoQualifiedStaff):
			h.logger.Warn("POST /reservations - No qualified staff: store_id=%d, type_id=%d", req.StoreID, req.ReservationTypeID)
			handlers.RespondBadRequest(w, msgNoQualifiedStaff)

		case errors.Is(err, createReservation.ErrDuplicateReservation):
			h.logger.Warn("POST /reservations - Slot taken: store_id=%d, start=%s", req.StoreID, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createReservation.ErrValidation):
			h.logger.Warn("POST /reservations - Past date rejected: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: store_id=%d, error=%v", req.StoreID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, staff_id=%d, date=%s, start=%s",
		result.ID, result.StaffID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
