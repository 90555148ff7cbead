package partner_signup_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/entities"
	"fastship/internal/generated/dto"
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
	var signupDTO dto.PartnerSignup
	err := json.NewDecoder(r.Body).Decode(&signupDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	partnerEntity, err := h.service.Signup(r.Context(), entities.PartnerCreate{
		Name:                signupDTO.Name,
		Email:               signupDTO.Email,
		Password:            signupDTO.Password,
		ServiceableZipCodes: signupDTO.ServiceableZipCodes,
		MaxHandlingCapacity: signupDTO.MaxHandlingCapacity,
	})
	if err != nil {
		switch {
		case errors.Is(err, partner.ErrMissingRequiredFields),
			errors.Is(err, partner.ErrInvalidEmail),
			errors.Is(err, partner.ErrInvalidPassword),
			errors.Is(err, partner.ErrInvalidCapacity),
			errors.Is(err, partner.ErrNoServiceableZips):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, partner.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(userDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
