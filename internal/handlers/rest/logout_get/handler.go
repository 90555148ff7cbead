package logout_get

import (
	"net/http"
	"time"

	"fastship/internal/pkg/middlewares/auth"
	"fastship/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	denylist TokenDenylist
}

func New(log handlerLogger, denylist TokenDenylist) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		denylist: denylist,
	}
}

// ServeHTTP revokes the presented token's jti for the rest of its
// lifetime, so the same token cannot authenticate again.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	ttl := time.Duration(session.TTL) * time.Second
	if ttl <= 0 {
		// expired anyway, nothing to revoke
		w.WriteHeader(http.StatusOK)
		return
	}

	err := h.denylist.Revoke(r.Context(), session.JTI, ttl)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("revoke access token")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
