package seller_verify_get

import (
	"errors"
	"net/http"

	"fastship/internal/service/seller"
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

	err := h.service.Verify(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, seller.ErrInvalidToken):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, seller.ErrSellerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
