package update_store

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/stores"
	"github.com/m04kA/SMC-ReservationService/internal/service/stores/models"
)

const (
	msgInvalidStoreID     = "invalid store ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "store not found"
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

// Handle PUT /api/stores/{storeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stores/{id} - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	var req models.UpdateStoreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stores/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), storeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrStoreNotFound):
			h.logger.Warn("PUT /stores/{id} - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, stores.ErrInvalidInput):
			h.logger.Warn("PUT /stores/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /stores/{id} - Failed: store_id=%d, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stores/{id} - Store updated: store_id=%d", storeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
