package partner_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/entities"
	"fastship/internal/generated/dto"
	"fastship/internal/pkg/middlewares/auth"
	"fastship/internal/service/partner"
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
	if !ok || session.Actor.Role != entities.RolePartner {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var updateDTO dto.PartnerUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	partnerEntity, err := h.service.UpdateProfile(r.Context(), entities.PartnerModify{
		ServiceableZipCodes: updateDTO.ServiceableZipCodes,
		MaxHandlingCapacity: updateDTO.MaxHandlingCapacity,
	}, session.Actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, partner.ErrMissingRequiredFields),
			errors.Is(err, partner.ErrInvalidCapacity),
			errors.Is(err, partner.ErrNoServiceableZips):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, partner.ErrPartnerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	userDTO := dto.User{
		ID:    partnerEntity.ID.String(),
		Name:  partnerEntity.Name,
		Email: partnerEntity.Email,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(userDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
