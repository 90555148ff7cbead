package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"fastship/internal/entities"
	retrierconfig "fastship/pkg/retrier"
	"fastship/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "notification-topic"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// NotificationGateway publishes deferred notifications to the broker.
// Publishing is best effort from the caller's point of view: callers
// already committed their transaction, so a failure here is logged and
// surfaced but never rolls anything back.
type NotificationGateway struct {
	producer producer
	topic    string
	retrier  retrier
}

func New(producer producer, topic string) *NotificationGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableProduceError,
	}

	return &NotificationGateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

func (g *NotificationGateway) Publish(ctx context.Context, notification entities.Notification) error {
	msg, err := toMessage(g.topic, notification)
	if err != nil {
		return fmt.Errorf("gateway notification, publish: %w", err)
	}

	err = g.executeWithMetrics(ctx, "Publish", func(_ context.Context) error {
		_, _, err := g.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway notification, publish %s to %s: %w", notification.Kind, notification.Recipient, err)
	}

	return nil
}

func isRetryableProduceError(err error) bool {
	if err == nil {
		return false
	}

	var kerr sarama.KError
	if errors.As(err, &kerr) {
		switch kerr {
		case sarama.ErrLeaderNotAvailable,
			sarama.ErrNotLeaderForPartition,
			sarama.ErrRequestTimedOut,
			sarama.ErrNotEnoughReplicas:
			return true
		default:
			return false
		}
	}

	// broken connections surface as plain errors
	return true
}

func (g *NotificationGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := getOutcome(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

func getOutcome(err error) string {
	if err == nil {
		return "OK"
	}
	return "ERROR"
}
