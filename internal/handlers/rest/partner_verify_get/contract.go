//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_verify_get_test
package partner_verify_get

import (
	"context"

	"fastship/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Verify(ctx context.Context, token string) error
}
