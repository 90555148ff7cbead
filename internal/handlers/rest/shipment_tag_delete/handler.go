package shipment_tag_delete

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"fastship/internal/entities"
	"fastship/internal/pkg/middlewares/auth"
	"fastship/internal/service/shipment"
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
	if _, ok := auth.SessionFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	tag := entities.TagName(vars["tag"])

	shipmentEntity, err := h.service.RemoveTag(r.Context(), id, tag)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidTag):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, shipment.ErrTagNotFound):
			w.WriteHeader(http.StatusNotFound)
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
