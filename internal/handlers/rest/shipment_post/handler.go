package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/entities"
	"fastship/internal/generated/dto"
	"fastship/internal/pkg/middlewares/auth"
	"fastship/internal/service/assignment"
	"fastship/internal/service/seller"
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
	session, ok := auth.SessionFromContext(r.Context())
	if !ok || session.Actor.Role != entities.RoleSeller {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var createDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createEntity := entities.ShipmentCreate{
		Content:     createDTO.Content,
		Weight:      createDTO.Weight,
		Destination: createDTO.Destination,
		ClientEmail: createDTO.ClientEmail,
	}

	shipmentEntity, err := h.service.Create(r.Context(), createEntity, session.Actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidContent),
			errors.Is(err, shipment.ErrInvalidWeight),
			errors.Is(err, shipment.ErrInvalidZip),
			errors.Is(err, assignment.ErrInvalidZip):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrPartnerNotAvailable):
			w.WriteHeader(http.StatusNotAcceptable)
		case errors.Is(err, seller.ErrSellerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	shipmentDTO := toShipmentDTO(shipmentEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(shipmentDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
