// Package webhook validates inbound provider notifications and turns them into
// normalized entities, one variant per event family.
package webhook

import (
	"encoding/json"
	"time"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
)

// Envelope holds the fields shared by every webhook
type Envelope struct {
	ID           string
	Type         string
	CreatedAt    *time.Time
	CreatedAtRaw string
	Account      map[string]any
	Raw          json.RawMessage
}

// Event is one of *OrderEvent, *ChargeEvent or *UnknownEvent
type Event interface {
	Meta() *Envelope
	Kind() entity.EventKind
	isEvent()
}

// OrderEvent is an "order.*" notification. Charges keep the order of the payload
// and are already linked to Order.
type OrderEvent struct {
	Envelope
	Order   *entity.Order
	Charges []*entity.Charge
}

// ChargeEvent is a "charge.*" notification. Order is set only when the payload
// embeds a full enough parent order; Charge.OrderID is set whenever the parent id is known.
type ChargeEvent struct {
	Envelope
	Charge *entity.Charge
	Order  *entity.Order
}

// UnknownEvent is any other notification; only its raw copy is kept
type UnknownEvent struct {
	Envelope
}

func (e *Envelope) Meta() *Envelope { return e }

func (e *OrderEvent) Kind() entity.EventKind   { return entity.EventKindOrder }
func (e *ChargeEvent) Kind() entity.EventKind  { return entity.EventKindCharge }
func (e *UnknownEvent) Kind() entity.EventKind { return entity.EventKindUnknown }

func (e *OrderEvent) isEvent()   {}
func (e *ChargeEvent) isEvent()  {}
func (e *UnknownEvent) isEvent() {}

// RawEvent returns the log record for the event
func RawEvent(ev Event) *entity.RawEvent {
	meta := ev.Meta()
	return entity.NewRawEvent(meta.ID, meta.Type, meta.Raw, meta.CreatedAt)
}
