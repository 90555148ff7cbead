package notification_send

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"fastship/internal/gateway/kafka/notification"
	"fastship/pkg/logger"
)

type Handler struct {
	mailer                   Mailer
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, mailer Mailer, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		mailer:                   mailer,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("notification.send: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// session closed on rebalance or consumer group shutdown
			h.log.Info("notification.send: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when
// ConsumeClaim must stop (context cancelled, the message stays
// unmarked and will be redelivered) and false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var msg notification.Message
	err := json.Unmarshal(message.Value, &msg)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("notification.send handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("kind", msg.Kind),
		logger.NewField("recipient", msg.Recipient),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("notification.send processing")

	done := make(chan error, 1)
	go func() {
		done <- h.mailer.Send(notification.ToDomain(msg))
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.send handler context cancelled, message will be reprocessed")
			return true

		default:
			// mail delivery is best effort, a bad address must not wedge the partition
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.send handler failed to deliver")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("notification.send: delivered")

	sess.MarkMessage(message, "")
	return false
}
