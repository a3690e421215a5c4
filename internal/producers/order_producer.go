package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
)

//go:generate moq -rm -out gen/order_producer_mock.go -pkg produsersgen -fmt goimports . OrderProducerI

type OrderProducerI interface {
	// SendOrderEvent publishes the current state of an order to the feed
	SendOrderEvent(ctx context.Context, order *entity.Order) error
}

// FeedStatus is the status published on the order feed
type FeedStatus string

const (
	FeedStatusUnspecified FeedStatus = "UNSPECIFIED"
	FeedStatusPending     FeedStatus = "PENDING"
	FeedStatusCompleted   FeedStatus = "COMPLETED"
	FeedStatusFailed      FeedStatus = "FAILED"
	FeedStatusCancelled   FeedStatus = "CANCELLED"
)

// OrderFeedEvent is the message published for every reconciled order
type OrderFeedEvent struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	CustomerID  *string    `json:"customer_id,omitempty"`
	Amount      string     `json:"amount"`
	Currency    string     `json:"currency"`
	Status      FeedStatus `json:"status"`
	StoneStatus string     `json:"stone_status"`
	Closed      bool       `json:"closed"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	EventID     string     `json:"event_id,omitempty"`
	TraceID     string     `json:"trace_id,omitempty"`
}

// OrderProducer handles sending order events to Kafka
type OrderProducer struct {
	kafkaProducer KafkaProducer
	feedTopic     string
}

// NewOrderProducer creates a new OrderProducer instance
func NewOrderProducer(kafkaProducer KafkaProducer, feedTopic string) *OrderProducer {
	return &OrderProducer{
		kafkaProducer: kafkaProducer,
		feedTopic:     feedTopic,
	}
}

// SendOrderEvent sends an order event to Kafka keyed by order id
func (p *OrderProducer) SendOrderEvent(ctx context.Context, order *entity.Order) error {
	event := convertOrderToFeed(order)
	event.EventID = logger.EventIDFromContext(ctx)
	event.TraceID = logger.TraceIDFromContext(ctx)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	logger.Info(ctx, "Sending order event to Kafka",
		zap.String("topic", p.feedTopic),
		zap.String("order_id", order.ID),
		zap.String("amount", event.Amount),
		zap.String("status", order.Status))

	err = p.kafkaProducer.Produce(ctx, p.feedTopic, order.ID, eventBytes)
	if err != nil {
		return fmt.Errorf("failed to produce order event to Kafka: %w", err)
	}

	return nil
}

func convertOrderToFeed(order *entity.Order) OrderFeedEvent {
	return OrderFeedEvent{
		ID:          order.ID,
		Code:        order.Code,
		CustomerID:  order.CustomerID,
		Amount:      order.AmountDecimal().StringFixed(2),
		Currency:    order.Currency,
		Status:      convertToFeedStatus(order.Status),
		StoneStatus: order.Status,
		Closed:      order.Closed,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// convertToFeedStatus converts a provider order status to the feed status
func convertToFeedStatus(status string) FeedStatus {
	switch status {
	case entity.OrderStatusPending:
		return FeedStatusPending
	case entity.OrderStatusPaid:
		return FeedStatusCompleted
	case entity.OrderStatusFailed:
		return FeedStatusFailed
	case entity.OrderStatusCanceled:
		return FeedStatusCancelled
	default:
		return FeedStatusUnspecified
	}
}
