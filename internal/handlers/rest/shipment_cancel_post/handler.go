package shipment_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"fastship/internal/entities"
	"fastship/internal/pkg/middlewares/auth"
	"fastship/internal/service/shipment"
	"fastship/internal/service/timeline"
	"fastship/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok || session.Actor.Role != entities.RoleSeller {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentEntity, err := h.service.Cancel(r.Context(), id, session.Actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrNotAuthorized):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, timeline.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	shipmentDTO := toShipmentDTO(shipmentEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(shipmentDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
