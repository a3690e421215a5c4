package helpers

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
)

// AssertOrderExists checks if order exists and returns it
func AssertOrderExists(ctx context.Context, t *testing.T, orderStore store.OrderStore, id string) *entity.Order {
	order, err := orderStore.GetByID(ctx, id)
	require.NoError(t, err, "Order should exist")
	require.NotNil(t, order, "Order should be found")
	return order
}

// AssertOrderNotExists checks that order was not stored
func AssertOrderNotExists(ctx context.Context, t *testing.T, orderStore store.OrderStore, id string) {
	_, err := orderStore.GetByID(ctx, id)
	assert.ErrorIs(t, err, entity.ErrNotFound, "Order should not exist")
}

// AssertOrderWithStatus checks order status
func AssertOrderWithStatus(ctx context.Context, t *testing.T, orderStore store.OrderStore, id string, status string) *entity.Order {
	order := AssertOrderExists(ctx, t, orderStore, id)
	assert.Equal(t, status, order.Status, "Order status should match expected")
	return order
}

// CountRows returns the number of rows of a table matching an id
func CountRows(t *testing.T, db *sqlx.DB, schema, table, id string) int {
	var n int
	err := db.Get(&n, "SELECT COUNT(*) FROM "+schema+"."+table+" WHERE id = $1", id)
	require.NoError(t, err)
	return n
}

// CountAll returns the number of rows of a table
func CountAll(t *testing.T, db *sqlx.DB, schema, table string) int {
	var n int
	err := db.Get(&n, "SELECT COUNT(*) FROM "+schema+"."+table)
	require.NoError(t, err)
	return n
}
