package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
)

const clientID = "stonehook"

// Producer представляет клиент для отправки сообщений в Kafka
type Producer struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
}

// NewProducer создает новый экземпляр Producer
func NewProducer(cfg config.Kafka, log *zap.Logger) (*Producer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.ClientID = clientID
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Retry.Max = 5
	saramaCfg.Producer.Return.Successes = true // нужно для синхронного продюсера
	// Один ключ (id заказа) всегда попадает в одну партицию.
	saramaCfg.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return NewProducerFromSarama(producer, log), nil
}

// NewProducerFromSarama wraps an existing sarama producer
func NewProducerFromSarama(producer sarama.SyncProducer, log *zap.Logger) *Producer {
	return &Producer{
		producer: producer,
		logger:   log,
	}
}

// Produce отправляет сообщение в указанный топик
func (p *Producer) Produce(ctx context.Context, topic string, key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(value),
	}

	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	if traceID := logger.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{
			Key:   []byte(logger.TracingKey),
			Value: []byte(traceID),
		})
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error("Failed to send message to Kafka",
			zap.String("topic", topic),
			zap.String("key", key),
			zap.Error(err))
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	p.logger.Debug("Message sent to Kafka",
		zap.String("topic", topic),
		zap.String("key", key),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.Int("value_size", len(value)))

	return nil
}

// Close закрывает соединение с Kafka
func (p *Producer) Close() error {
	return p.producer.Close()
}
