package producers

import "context"

// KafkaProducer интерфейс для отправки сообщений в Kafka
type KafkaProducer interface {
	// Produce отправляет сообщение в указанный топик
	Produce(ctx context.Context, topic string, key string, value []byte) error
}
