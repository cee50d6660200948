package create_store

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/stores"
	"github.com/m04kA/SMC-ReservationService/internal/service/stores/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service StoreService
	logger  Logger
}

func NewHandler(service StoreService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/stores
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStoreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stores - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrInvalidInput):
			h.logger.Warn("POST /stores - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /stores - Failed to create store: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stores - Store created: store_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
