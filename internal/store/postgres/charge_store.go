package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
)

// ChargeStore реализует интерфейс store.ChargeStore для PostgreSQL
type ChargeStore struct {
	db *DB
}

// NewChargeStore создает новый экземпляр ChargeStore
func NewChargeStore(db *DB) *ChargeStore {
	return &ChargeStore{db: db}
}

// Upsert inserts the charge or overwrites pedido_id, valor_pago, status, pago_em and atualizado_em.
// A NULL pedido_id never erases a link that is already known.
func (s *ChargeStore) Upsert(ctx context.Context, charge *entity.Charge) error {
	if charge == nil || charge.ID == "" {
		return fmt.Errorf("%w: charge without id", entity.ErrInvalidEntity)
	}

	const query = `
		INSERT INTO cobrancas_stone (
			id, pedido_id, codigo, valor, valor_pago, status, moeda,
			metodo_pagamento, pago_em, criado_em, atualizado_em
		) VALUES (
			:id, :pedido_id, :codigo, :valor, :valor_pago, :status, :moeda,
			:metodo_pagamento, :pago_em, :criado_em, :atualizado_em
		)
		ON CONFLICT (id) DO UPDATE SET
			pedido_id = COALESCE(EXCLUDED.pedido_id, cobrancas_stone.pedido_id),
			valor_pago = EXCLUDED.valor_pago,
			status = EXCLUDED.status,
			pago_em = EXCLUDED.pago_em,
			atualizado_em = EXCLUDED.atualizado_em;
	`

	_, err := sqlx.NamedExecContext(ctx, s.db.Primary(ctx), query, charge)
	if err != nil {
		return fmt.Errorf("failed to upsert charge %s: %w", charge.ID, store.HandlePGError(err))
	}

	return nil
}

// ListByOrderID получает платежи заказа, упорядоченные по дате создания
func (s *ChargeStore) ListByOrderID(ctx context.Context, orderID string) ([]*entity.Charge, error) {
	const query = `
		SELECT * FROM cobrancas_stone
		WHERE pedido_id = $1
		ORDER BY criado_em ASC NULLS LAST, id ASC;
	`

	charges := make([]*entity.Charge, 0)
	err := sqlx.SelectContext(ctx, s.db.Replica(), &charges, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges by order ID: %w", store.HandlePGError(err))
	}

	return charges, nil
}
