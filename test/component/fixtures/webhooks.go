package fixtures

import (
	"encoding/json"
	"fmt"
)

// Charge describes a charge inside a webhook body
type Charge struct {
	ID         string
	Amount     int64
	PaidAmount int64
	Status     string
	CreatedAt  string
}

// Order describes the order part of a webhook body
type Order struct {
	ID         string
	Code       string
	Amount     int64
	Status     string
	CustomerID string
	CreatedAt  string
	UpdatedAt  string
	Charges    []Charge
}

// DefaultOrder returns a paid order with one charge
func DefaultOrder(id string) Order {
	return Order{
		ID:         id,
		Code:       "CODE-" + id,
		Amount:     1000,
		Status:     "paid",
		CustomerID: "cus_" + id,
		CreatedAt:  "2024-05-01T12:00:00.123456789Z",
		UpdatedAt:  "2024-05-01T12:05:00Z",
		Charges: []Charge{
			{ID: "ch_" + id, Amount: 1000, PaidAmount: 1000, Status: "paid", CreatedAt: "2024-05-01T12:00:01Z"},
		},
	}
}

// OrderEvent builds an order.* webhook body
func OrderEvent(eventID, eventType string, order Order) []byte {
	return mustMarshal(map[string]any{
		"id":         eventID,
		"type":       eventType,
		"created_at": "2024-05-01T12:05:00Z",
		"account":    map[string]any{"id": "acc_1", "name": "Clinic"},
		"data":       orderData(order),
	})
}

// ChargeEvent builds a charge.* webhook body; order may be nil
func ChargeEvent(eventID, eventType string, charge Charge, order *Order) []byte {
	data := chargeData(charge)
	if order != nil {
		data["order"] = orderData(*order)
	}
	return mustMarshal(map[string]any{
		"id":         eventID,
		"type":       eventType,
		"created_at": "2024-05-01T12:05:00Z",
		"account":    map[string]any{"id": "acc_1"},
		"data":       data,
	})
}

// RawEvent builds a webhook body of any type with an opaque data object
func RawEvent(eventID, eventType string) []byte {
	return mustMarshal(map[string]any{
		"id":         eventID,
		"type":       eventType,
		"created_at": "2024-05-01T12:05:00Z",
		"account":    map[string]any{},
		"data":       map[string]any{"id": "obj_" + eventID},
	})
}

func orderData(order Order) map[string]any {
	data := map[string]any{
		"id":         order.ID,
		"code":       order.Code,
		"amount":     order.Amount,
		"currency":   "BRL",
		"status":     order.Status,
		"closed":     order.Status == "paid",
		"created_at": order.CreatedAt,
		"updated_at": order.UpdatedAt,
	}
	if order.CustomerID != "" {
		data["customer"] = map[string]any{"id": order.CustomerID}
	}
	if len(order.Charges) > 0 {
		charges := make([]map[string]any, 0, len(order.Charges))
		for _, c := range order.Charges {
			charges = append(charges, chargeData(c))
		}
		data["charges"] = charges
	}
	return data
}

func chargeData(charge Charge) map[string]any {
	return map[string]any{
		"id":             charge.ID,
		"code":           "C-" + charge.ID,
		"amount":         charge.Amount,
		"paid_amount":    charge.PaidAmount,
		"status":         charge.Status,
		"currency":       "BRL",
		"payment_method": "pix",
		"created_at":     charge.CreatedAt,
	}
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("fixtures: %v", err))
	}
	return b
}
