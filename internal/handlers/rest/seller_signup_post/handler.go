package seller_signup_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fastship/internal/entities"
	"fastship/internal/generated/dto"
	"fastship/internal/service/seller"
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
	var signupDTO dto.SellerSignup
	err := json.NewDecoder(r.Body).Decode(&signupDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sellerEntity, err := h.service.Signup(r.Context(), entities.SellerCreate{
		Name:     signupDTO.Name,
		Email:    signupDTO.Email,
		Password: signupDTO.Password,
		Address:  signupDTO.Address,
		ZipCode:  signupDTO.ZipCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, seller.ErrMissingRequiredFields),
			errors.Is(err, seller.ErrInvalidEmail),
			errors.Is(err, seller.ErrInvalidPassword):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, seller.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	userDTO := dto.User{
		ID:    sellerEntity.ID.String(),
		Name:  sellerEntity.Name,
		Email: sellerEntity.Email,
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
