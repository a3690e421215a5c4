package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
)

// OrderStore реализует интерфейс store.OrderStore для PostgreSQL
type OrderStore struct {
	db *DB
}

// NewOrderStore создает новый экземпляр OrderStore
func NewOrderStore(db *DB) *OrderStore {
	return &OrderStore{db: db}
}

// Upsert inserts the order or overwrites its mutable fields; id and criado_em are kept.
func (s *OrderStore) Upsert(ctx context.Context, order *entity.Order) error {
	if order == nil || order.ID == "" {
		return fmt.Errorf("%w: order without id", entity.ErrInvalidEntity)
	}

	const query = `
		INSERT INTO pedidos_stone (
			id, codigo, valor, moeda, status, fechado, cliente_id, criado_em, atualizado_em
		) VALUES (
			:id, :codigo, :valor, :moeda, :status, :fechado, :cliente_id, :criado_em, :atualizado_em
		)
		ON CONFLICT (id) DO UPDATE SET
			codigo = EXCLUDED.codigo,
			valor = EXCLUDED.valor,
			moeda = EXCLUDED.moeda,
			status = EXCLUDED.status,
			fechado = EXCLUDED.fechado,
			cliente_id = EXCLUDED.cliente_id,
			atualizado_em = EXCLUDED.atualizado_em;
	`

	_, err := sqlx.NamedExecContext(ctx, s.db.Primary(ctx), query, order)
	if err != nil {
		return fmt.Errorf("failed to upsert order %s: %w", order.ID, store.HandlePGError(err))
	}

	return nil
}

// GetByID получает заказ по ID
func (s *OrderStore) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	const query = `SELECT * FROM pedidos_stone WHERE id = $1;`

	var order entity.Order
	err := sqlx.GetContext(ctx, s.db.Replica(), &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", store.HandlePGError(err))
	}

	return &order, nil
}
