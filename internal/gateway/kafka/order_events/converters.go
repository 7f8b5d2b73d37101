package order_events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"orders/internal/entities"
)

const EventType = "order.status.changed"

type StatusChangedEvent struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

func toEvent(order entities.Order, changedAt time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:   order.ID.String(),
		Status:    order.Status.String(),
		ChangedAt: changedAt.UTC(),
	}
}

func toMessage(topic string, event StatusChangedEvent) (*sarama.ProducerMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}

	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(EventType)},
		},
		Timestamp: event.ChangedAt,
	}, nil
}
