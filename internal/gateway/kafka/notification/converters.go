package notification

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"fastship/internal/entities"
)

// Message is the wire form of a notification on the topic. The recipient
// keys the message so retries for one address stay ordered.
type Message struct {
	Kind      string            `json:"kind"`
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject"`
	Context   map[string]string `json:"context,omitempty"`
}

func toMessage(topic string, notification entities.Notification) (*sarama.ProducerMessage, error) {
	payload, err := json.Marshal(Message{
		Kind:      notification.Kind.String(),
		Recipient: notification.Recipient,
		Subject:   notification.Subject,
		Context:   notification.Context,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(notification.Recipient),
		Value: sarama.ByteEncoder(payload),
	}, nil
}

func ToDomain(msg Message) entities.Notification {
	return entities.Notification{
		Kind:      entities.NotificationKind(msg.Kind),
		Recipient: msg.Recipient,
		Subject:   msg.Subject,
		Context:   msg.Context,
	}
}
