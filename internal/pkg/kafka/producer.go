package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"fastship/pkg/logger"
)

// NewSyncProducer builds a synchronous producer with full acks and
// verifies broker reachability before handing it out.
func NewSyncProducer(ctx context.Context, log logger.Logger, versionStr string, brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
	)

	err = pingKafka(ctx, kafkaLog, brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return producer, nil
}
