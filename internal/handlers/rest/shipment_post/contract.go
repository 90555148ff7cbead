//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_post_test
package shipment_post

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
	Create(ctx context.Context, create entities.ShipmentCreate, sellerID uuid.UUID) (*entities.Shipment, error)
}
