//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=seller_signup_post_test
package seller_signup_post

import (
	"context"

	"fastship/internal/entities"
	"fastship/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Signup(ctx context.Context, create entities.SellerCreate) (*entities.Seller, error)
}
