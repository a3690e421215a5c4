package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	storemock "github.com/Alcunha-R/demo-api-stone-host/internal/store/gen"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(orderStore *storemock.OrderStoreMock, chargeStore *storemock.ChargeStoreMock, id string) *httptest.ResponseRecorder {
	router := gin.New()
	NewServer(orderStore, chargeStore).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pedidos/"+id, nil))
	return rec
}

func TestGetOrderHandler(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orderID := "or_1"

	t.Run("returns order with charges", func(t *testing.T) {
		orderStore := &storemock.OrderStoreMock{
			GetByIDFunc: func(ctx context.Context, id string) (*entity.Order, error) {
				return &entity.Order{
					ID: id, Code: "ABC", Amount: 1050, Currency: "BRL",
					Status: entity.OrderStatusPaid, Closed: true, CreatedAt: &created,
				}, nil
			},
		}
		chargeStore := &storemock.ChargeStoreMock{
			ListByOrderIDFunc: func(ctx context.Context, id string) ([]*entity.Charge, error) {
				return []*entity.Charge{
					{ID: "ch_1", OrderID: &orderID, Amount: 1050, PaidAmount: 1050, Status: entity.ChargeStatusPaid},
				}, nil
			},
		}

		rec := serve(orderStore, chargeStore, orderID)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Contains(t, body, "pedido")
		require.Contains(t, body, "cobrancas")

		var order orderView
		require.NoError(t, json.Unmarshal(body["pedido"], &order))
		assert.Equal(t, "or_1", order.ID)
		assert.Equal(t, int64(1050), order.Amount)
		assert.Equal(t, "10.50", order.AmountMajor)
		assert.Nil(t, order.CustomerID)

		var charges []chargeView
		require.NoError(t, json.Unmarshal(body["cobrancas"], &charges))
		require.Len(t, charges, 1)
		assert.Equal(t, "ch_1", charges[0].ID)
		assert.Equal(t, "10.50", charges[0].PaidAmountMajor)

		require.Len(t, chargeStore.ListByOrderIDCalls(), 1)
		assert.Equal(t, orderID, chargeStore.ListByOrderIDCalls()[0].OrderID)
	})

	t.Run("order without charges has an empty list", func(t *testing.T) {
		orderStore := &storemock.OrderStoreMock{
			GetByIDFunc: func(ctx context.Context, id string) (*entity.Order, error) {
				return &entity.Order{ID: id}, nil
			},
		}
		chargeStore := &storemock.ChargeStoreMock{
			ListByOrderIDFunc: func(ctx context.Context, id string) ([]*entity.Charge, error) {
				return []*entity.Charge{}, nil
			},
		}

		rec := serve(orderStore, chargeStore, orderID)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cobrancas":[]`)
	})

	t.Run("404 for unknown order", func(t *testing.T) {
		orderStore := &storemock.OrderStoreMock{
			GetByIDFunc: func(ctx context.Context, id string) (*entity.Order, error) {
				return nil, entity.ErrNotFound
			},
		}
		chargeStore := &storemock.ChargeStoreMock{}

		rec := serve(orderStore, chargeStore, "missing")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Pedido não encontrado"}`, rec.Body.String())
		assert.Empty(t, chargeStore.ListByOrderIDCalls())
	})

	t.Run("500 on store failure", func(t *testing.T) {
		orderStore := &storemock.OrderStoreMock{
			GetByIDFunc: func(ctx context.Context, id string) (*entity.Order, error) {
				return nil, fmt.Errorf("connection refused: %w", entity.ErrStore)
			},
		}

		rec := serve(orderStore, &storemock.ChargeStoreMock{}, orderID)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
