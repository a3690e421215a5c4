package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
)

func TestProducer_Produce(t *testing.T) {
	t.Run("sends keyed message with trace header", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, nil)
		sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			key, err := msg.Key.Encode()
			if err != nil {
				return err
			}
			if string(key) != "or_1" {
				return errors.New("unexpected key " + string(key))
			}
			if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != "trace-1" {
				return errors.New("trace header is missing")
			}
			return nil
		})
		p := NewProducerFromSarama(sp, zap.NewNop())
		ctx := logger.ContextWithTraceID(context.Background(), "trace-1")

		err := p.Produce(ctx, "stone.orders", "or_1", []byte(`{"id":"or_1"}`))

		require.NoError(t, err)
		require.NoError(t, p.Close())
	})

	t.Run("returns broker error", func(t *testing.T) {
		sp := mocks.NewSyncProducer(t, nil)
		sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		p := NewProducerFromSarama(sp, zap.NewNop())

		err := p.Produce(context.Background(), "stone.orders", "", []byte(`{}`))

		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, p.Close())
	})
}
