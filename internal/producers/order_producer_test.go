package producers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
)

type kafkaProducerStub struct {
	topic string
	key   string
	value []byte
	err   error
}

func (s *kafkaProducerStub) Produce(_ context.Context, topic string, key string, value []byte) error {
	s.topic, s.key, s.value = topic, key, value
	return s.err
}

func TestOrderProducer_SendOrderEvent(t *testing.T) {
	customer := "cus_1"
	order := &entity.Order{
		ID:         "or_1",
		Code:       "ABC",
		Amount:     12345,
		Currency:   "BRL",
		Status:     entity.OrderStatusPaid,
		Closed:     true,
		CustomerID: &customer,
	}

	t.Run("publishes json keyed by order id", func(t *testing.T) {
		stub := &kafkaProducerStub{}
		p := NewOrderProducer(stub, "stone.orders")
		ctx := logger.ContextWithEventID(context.Background(), "hook_1")

		require.NoError(t, p.SendOrderEvent(ctx, order))

		assert.Equal(t, "stone.orders", stub.topic)
		assert.Equal(t, "or_1", stub.key)

		var event OrderFeedEvent
		require.NoError(t, json.Unmarshal(stub.value, &event))
		assert.Equal(t, "123.45", event.Amount)
		assert.Equal(t, FeedStatusCompleted, event.Status)
		assert.Equal(t, entity.OrderStatusPaid, event.StoneStatus)
		assert.Equal(t, "hook_1", event.EventID)
		require.NotNil(t, event.CustomerID)
		assert.Equal(t, "cus_1", *event.CustomerID)
	})

	t.Run("wraps broker errors", func(t *testing.T) {
		brokerErr := errors.New("broker down")
		p := NewOrderProducer(&kafkaProducerStub{err: brokerErr}, "stone.orders")

		err := p.SendOrderEvent(context.Background(), order)

		assert.ErrorIs(t, err, brokerErr)
	})
}

func TestConvertToFeedStatus(t *testing.T) {
	tests := map[string]FeedStatus{
		entity.OrderStatusPending:  FeedStatusPending,
		entity.OrderStatusPaid:     FeedStatusCompleted,
		entity.OrderStatusFailed:   FeedStatusFailed,
		entity.OrderStatusCanceled: FeedStatusCancelled,
		"something_new":            FeedStatusUnspecified,
	}
	for status, want := range tests {
		assert.Equal(t, want, convertToFeedStatus(status), status)
	}
}
