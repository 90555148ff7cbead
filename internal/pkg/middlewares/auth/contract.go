package auth

import (
	"context"
	"time"

	"fastship/internal/entities"
	"fastship/pkg/logger"
)

type AccessTokens interface {
	Parse(token string) (entities.Actor, string, time.Time, error)
}

type TokenDenylist interface {
	Revoked(ctx context.Context, jti string) (bool, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
