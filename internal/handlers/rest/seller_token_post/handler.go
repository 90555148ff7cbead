package seller_token_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var tokenDTO dto.TokenRequest
	err := json.NewDecoder(r.Body).Decode(&tokenDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	token, err := h.service.Token(r.Context(), tokenDTO.Email, tokenDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, seller.ErrBadCredentials),
			errors.Is(err, seller.ErrNotVerified):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
