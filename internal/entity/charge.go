package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Charge представляет попытку оплаты заказа
type Charge struct {
	ID            string     `db:"id"`
	OrderID       *string    `db:"pedido_id"`
	Code          string     `db:"codigo"`
	Amount        int64      `db:"valor"`
	PaidAmount    int64      `db:"valor_pago"`
	Status        string     `db:"status"`
	Currency      string     `db:"moeda"`
	PaymentMethod string     `db:"metodo_pagamento"`
	PaidAt        *time.Time `db:"pago_em"`
	CreatedAt     *time.Time `db:"criado_em"`
	UpdatedAt     *time.Time `db:"atualizado_em"`
}

const (
	ChargeStatusPending = "pending"
	ChargeStatusPaid    = "paid"
	ChargeStatusFailed  = "failed"
)

// AmountDecimal returns the charged amount in major currency units
func (c *Charge) AmountDecimal() decimal.Decimal {
	return decimal.New(c.Amount, -2)
}

// PaidAmountDecimal returns the paid amount in major currency units
func (c *Charge) PaidAmountDecimal() decimal.Decimal {
	return decimal.New(c.PaidAmount, -2)
}

func (c *Charge) IsPaid() bool {
	return c.Status == ChargeStatusPaid
}

// HasOrder reports whether the charge is linked to a parent order
func (c *Charge) HasOrder() bool {
	return c.OrderID != nil && *c.OrderID != ""
}
