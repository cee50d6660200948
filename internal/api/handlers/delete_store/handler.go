package delete_store

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/stores"
)

const (
	msgInvalidStoreID = "invalid store ID"
	msgNotFound       = "store not found"
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

// Handle DELETE /api/stores/{storeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, err := strconv.ParseInt(vars["storeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /stores/{id} - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	if err := h.service.Delete(r.Context(), storeID); err != nil {
		switch {
		case errors.Is(err, stores.ErrStoreNotFound):
			h.logger.Warn("DELETE /stores/{id} - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /stores/{id} - Failed: store_id=%d, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /stores/{id} - Store deleted: store_id=%d", storeID)
	handlers.RespondNoContent(w)
}
