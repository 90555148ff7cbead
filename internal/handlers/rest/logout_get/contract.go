//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=logout_get_test
package logout_get

import (
	"context"
	"time"

	"fastship/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}
