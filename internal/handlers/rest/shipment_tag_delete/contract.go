//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_tag_delete_test
package shipment_tag_delete

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
	RemoveTag(ctx context.Context, id uuid.UUID, tag entities.TagName) (*entities.Shipment, error)
}
