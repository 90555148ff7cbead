//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"github.com/IBM/sarama"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
