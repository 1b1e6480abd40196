package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hyeonwoo-dev/atelier-shop/internal/config"
	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"

	"github.com/segmentio/kafka-go"
)

const (
	OrderCreated       = "order.created"
	OrderStatusChanged = "order.status_changed"
	OrderCancelled     = "order.cancelled"
	OrderRefunded      = "order.refunded"
)

// OrderEvent is the JSON payload downstream consumers (notifications,
// analytics) read off the order topic.
type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	UserID      string          `json:"user_id"`
	Status      entities.Status `json:"status"`
	FinalAmount int             `json:"final_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

func NewOrderEvent(eventType string, o entities.Order) OrderEvent {
	return OrderEvent{
		Type:        eventType,
		OrderID:     o.ID.String(),
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      o.Status,
		FinalAmount: o.Payment.FinalAmount,
		OccurredAt:  time.Now().UTC(),
	}
}

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(cfg config.Kafka) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// Publish writes one event keyed by order id, so all events of an order
// land on the same partition in order.
func (p *Publisher) Publish(ctx context.Context, event OrderEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
