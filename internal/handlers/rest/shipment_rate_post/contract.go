//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_rate_post_test
package shipment_rate_post

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
	Rate(ctx context.Context, token string, rating int, comment *string) error
}
