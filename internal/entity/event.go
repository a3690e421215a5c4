package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// EventKind is the family of a webhook event, taken from the prefix of its type
type EventKind string

const (
	EventKindOrder   EventKind = "order"
	EventKindCharge  EventKind = "charge"
	EventKindUnknown EventKind = "unknown"
)

// KindOf returns the family of an upstream event type such as "order.paid" or "charge.created"
func KindOf(eventType string) EventKind {
	switch {
	case strings.HasPrefix(eventType, "order."):
		return EventKindOrder
	case strings.HasPrefix(eventType, "charge."):
		return EventKindCharge
	default:
		return EventKindUnknown
	}
}

// RawEvent is the durable copy of a received webhook, stored once per upstream id
type RawEvent struct {
	ID         string          `db:"id"`
	Type       string          `db:"tipo"`
	Payload    json.RawMessage `db:"payload"`
	CreatedAt  *time.Time      `db:"criado_em"`
	ReceivedAt time.Time       `db:"recebido_em"`
}

// NewRawEvent creates a new RawEvent instance received now
func NewRawEvent(id, eventType string, payload json.RawMessage, createdAt *time.Time) *RawEvent {
	return &RawEvent{
		ID:         id,
		Type:       eventType,
		Payload:    payload,
		CreatedAt:  createdAt,
		ReceivedAt: time.Now().UTC(),
	}
}

func (e *RawEvent) Kind() EventKind {
	return KindOf(e.Type)
}
