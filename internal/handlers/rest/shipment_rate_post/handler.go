package shipment_rate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/generated/dto"
	"fastship/internal/service/shipment"
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
	token := r.URL.Query().Get("token")
	if token == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var reviewDTO dto.ReviewCreate
	err := json.NewDecoder(r.Body).Decode(&reviewDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Rate(r.Context(), token, reviewDTO.Rating, reviewDTO.Comment)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrNotAuthorized):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, shipment.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}
