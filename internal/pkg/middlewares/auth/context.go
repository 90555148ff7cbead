package auth

import (
	"context"

	"fastship/internal/entities"
)

type contextKey struct{}

// Session is the authenticated request identity the middleware places in
// the request context.
type Session struct {
	Actor entities.Actor
	JTI   string
	TTL   int64 // seconds until the token expires
}

func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(contextKey{}).(Session)
	return session, ok
}
