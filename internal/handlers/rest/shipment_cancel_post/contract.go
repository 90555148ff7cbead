//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_cancel_post_test
package shipment_cancel_post

import (
	"context"

	"github.com/google/uuid"

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
	Cancel(ctx context.Context, id uuid.UUID, sellerID uuid.UUID) (*entities.Shipment, error)
}
