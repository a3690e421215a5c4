package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	"github.com/Alcunha-R/demo-api-stone-host/internal/timestamp"
)

type envelopeWire struct {
	ID        *string         `json:"id"`
	Type      *string         `json:"type"`
	CreatedAt *string         `json:"created_at"`
	Account   json.RawMessage `json:"account"`
	Data      json.RawMessage `json:"data"`
}

// Parse validates body and returns the event variant selected by the type prefix.
// Every failure is a *ValidationError; timestamps that cannot be parsed become nil.
func Parse(ctx context.Context, body []byte) (Event, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, invalid("body", "empty")
	}
	if !isObject(body) {
		return nil, invalid("body", "expected a json object")
	}

	// jsonb не принимает ни битый UTF-8, ни \u0000
	if !utf8.Valid(body) {
		return nil, invalid("body", "invalid utf-8")
	}

	var wire envelopeWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, decodeError("", err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, decodeError("", err)
	}
	if hasNUL(doc) {
		return nil, invalid("body", "null character in string")
	}

	env, err := validateEnvelope(ctx, &wire, body)
	if err != nil {
		return nil, err
	}

	switch entity.KindOf(env.Type) {
	case entity.EventKindOrder:
		return parseOrderEvent(ctx, env, wire.Data)
	case entity.EventKindCharge:
		return parseChargeEvent(ctx, env, wire.Data)
	default:
		return &UnknownEvent{Envelope: env}, nil
	}
}

func validateEnvelope(ctx context.Context, wire *envelopeWire, body []byte) (Envelope, error) {
	if wire.ID == nil || strings.TrimSpace(*wire.ID) == "" {
		return Envelope{}, invalid("id", "required")
	}
	if wire.Type == nil || strings.TrimSpace(*wire.Type) == "" {
		return Envelope{}, invalid("type", "required")
	}
	if wire.CreatedAt == nil || strings.TrimSpace(*wire.CreatedAt) == "" {
		return Envelope{}, invalid("created_at", "required")
	}
	if !isObject(wire.Account) {
		return Envelope{}, invalid("account", "required object")
	}
	if !isObject(wire.Data) {
		return Envelope{}, invalid("data", "required object")
	}

	var account map[string]any
	if err := json.Unmarshal(wire.Account, &account); err != nil {
		return Envelope{}, decodeError("account", err)
	}

	var raw bytes.Buffer
	if err := json.Compact(&raw, body); err != nil {
		return Envelope{}, decodeError("", err)
	}

	return Envelope{
		ID:           *wire.ID,
		Type:         *wire.Type,
		CreatedAt:    timestamp.Normalize(ctx, *wire.CreatedAt),
		CreatedAtRaw: *wire.CreatedAt,
		Account:      account,
		Raw:          raw.Bytes(),
	}, nil
}

func parseOrderEvent(ctx context.Context, env Envelope, data json.RawMessage) (*OrderEvent, error) {
	var wire orderData
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, decodeError("data", err)
	}

	payload := &wire.orderPayload
	prefix := "data"
	if payload.ID == "" && wire.Order != nil {
		payload = wire.Order
		prefix = "data.order"
	}
	if payload.ID == "" {
		return nil, invalid(prefix+".id", "required")
	}

	order := toOrder(ctx, payload)
	charges := make([]*entity.Charge, 0, len(payload.Charges))
	for i := range payload.Charges {
		if payload.Charges[i].ID == "" {
			return nil, invalid(fmt.Sprintf("%s.charges[%d].id", prefix, i), "required")
		}
		charge := toCharge(ctx, &payload.Charges[i])
		orderID := order.ID
		charge.OrderID = &orderID
		charges = append(charges, charge)
	}

	return &OrderEvent{Envelope: env, Order: order, Charges: charges}, nil
}

func parseChargeEvent(ctx context.Context, env Envelope, data json.RawMessage) (*ChargeEvent, error) {
	var wire chargePayload
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, decodeError("data", err)
	}
	if wire.ID == "" {
		return nil, invalid("data.id", "required")
	}

	ev := &ChargeEvent{Envelope: env, Charge: toCharge(ctx, &wire)}
	if wire.Order != nil && wire.Order.ID != "" {
		orderID := wire.Order.ID
		ev.Charge.OrderID = &orderID
		if wire.Order.describesOrder() {
			ev.Order = toOrder(ctx, wire.Order)
		}
	}

	return ev, nil
}

func toOrder(ctx context.Context, p *orderPayload) *entity.Order {
	return &entity.Order{
		ID:         p.ID,
		Code:       p.Code,
		Amount:     p.amount(),
		Currency:   p.Currency,
		Status:     p.Status,
		Closed:     p.Closed,
		CustomerID: p.customerID(),
		CreatedAt:  timestamp.Normalize(ctx, p.CreatedAt),
		UpdatedAt:  timestamp.Normalize(ctx, p.UpdatedAt),
	}
}

func toCharge(ctx context.Context, p *chargePayload) *entity.Charge {
	return &entity.Charge{
		ID:            p.ID,
		Code:          p.Code,
		Amount:        p.Amount,
		PaidAmount:    p.PaidAmount,
		Status:        p.Status,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		PaidAt:        timestamp.Normalize(ctx, p.PaidAt),
		CreatedAt:     timestamp.Normalize(ctx, p.CreatedAt),
		UpdatedAt:     timestamp.Normalize(ctx, p.UpdatedAt),
	}
}

func hasNUL(v any) bool {
	switch v := v.(type) {
	case string:
		return strings.ContainsRune(v, 0)
	case map[string]any:
		for key, item := range v {
			if strings.ContainsRune(key, 0) || hasNUL(item) {
				return true
			}
		}
	case []any:
		for _, item := range v {
			if hasNUL(item) {
				return true
			}
		}
	}
	return false
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
