//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_send_test
package notification_send

import (
	"fastship/internal/entities"
	"fastship/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Mailer interface {
	Send(notification entities.Notification) error
}
