package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order представляет заказ платёжного провайдера
type Order struct {
	ID         string     `db:"id"`
	Code       string     `db:"codigo"`
	Amount     int64      `db:"valor"`
	Currency   string     `db:"moeda"`
	Status     string     `db:"status"`
	Closed     bool       `db:"fechado"`
	CustomerID *string    `db:"cliente_id"`
	CreatedAt  *time.Time `db:"criado_em"`
	UpdatedAt  *time.Time `db:"atualizado_em"`
}

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusCanceled = "canceled"
	OrderStatusFailed   = "failed"
)

// AmountDecimal returns the amount in major currency units
func (o *Order) AmountDecimal() decimal.Decimal {
	return decimal.New(o.Amount, -2)
}

func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

func (o *Order) IsClosed() bool {
	return o.Closed
}
