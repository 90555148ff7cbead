//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=seller_token_post_test
package seller_token_post

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
	Token(ctx context.Context, email, password string) (string, error)
}
