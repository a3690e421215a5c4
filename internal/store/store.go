package store

import (
	"context"
	"time"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
)

//go:generate moq -rm -out gen/store_mock.go -pkg storemock -fmt goimports . OrderStore ChargeStore EventStore DBTransactor

// OrderStore определяет интерфейс для работы с хранилищем заказов
type OrderStore interface {
	// Upsert вставляет заказ или обновляет изменяемые поля существующего
	Upsert(ctx context.Context, order *entity.Order) error

	// GetByID получает заказ по ID
	GetByID(ctx context.Context, id string) (*entity.Order, error)
}

// ChargeStore определяет интерфейс для работы с хранилищем платежей
type ChargeStore interface {
	// Upsert вставляет платёж или обновляет изменяемые поля существующего
	Upsert(ctx context.Context, charge *entity.Charge) error

	// ListByOrderID получает платежи заказа в стабильном порядке
	ListByOrderID(ctx context.Context, orderID string) ([]*entity.Charge, error)
}

// EventStore определяет интерфейс для работы с журналом входящих событий
type EventStore interface {
	// Create сохраняет событие; повторная доставка того же ID не является ошибкой.
	// Возвращает false, если событие уже было записано.
	Create(ctx context.Context, event *entity.RawEvent) (bool, error)

	// GetByID получает событие по внешнему идентификатору
	GetByID(ctx context.Context, id string) (*entity.RawEvent, error)

	// ListReceivedSince получает события, полученные начиная с since, по порядку получения
	ListReceivedSince(ctx context.Context, since time.Time, limit int) ([]*entity.RawEvent, error)
}

// DBTransactor определяет интерфейс для работы с транзакциями
type DBTransactor interface {
	// Exec выполняет функцию в транзакции
	Exec(ctx context.Context, fn func(ctx context.Context) error) error
}
