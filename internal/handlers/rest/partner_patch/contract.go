//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_patch_test
package partner_patch

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
	UpdateProfile(ctx context.Context, modify entities.PartnerModify, actorID uuid.UUID) (*entities.DeliveryPartner, error)
}
