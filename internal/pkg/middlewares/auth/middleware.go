package auth

import (
	"net/http"
	"strings"
	"time"

	"fastship/pkg/logger"
)

// Middleware authenticates a bearer access token, rejects revoked
// tokens and puts the resulting session into the request context.
func Middleware(log handlerLogger, tokens AccessTokens, denylist TokenDenylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				unauthorized(w)
				return
			}

			actor, jti, expiry, err := tokens.Parse(tokenStr)
			if err != nil {
				unauthorized(w)
				return
			}

			revoked, err := denylist.Revoked(r.Context(), jti)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("denylist lookup failed")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if revoked {
				unauthorized(w)
				return
			}

			session := Session{
				Actor: actor,
				JTI:   jti,
				TTL:   int64(time.Until(expiry).Seconds()),
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
