package orders

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/entity"
	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
)

const detailNotFound = "Pedido não encontrado"

type orderResponse struct {
	Order   orderView    `json:"pedido"`
	Charges []chargeView `json:"cobrancas"`
}

// orderView keeps the column names of the store; valor stays in minor units
type orderView struct {
	ID          string     `json:"id"`
	Code        string     `json:"codigo"`
	Amount      int64      `json:"valor"`
	AmountMajor string     `json:"valor_decimal"`
	Currency    string     `json:"moeda"`
	Status      string     `json:"status"`
	Closed      bool       `json:"fechado"`
	CustomerID  *string    `json:"cliente_id"`
	CreatedAt   *time.Time `json:"criado_em"`
	UpdatedAt   *time.Time `json:"atualizado_em"`
}

type chargeView struct {
	ID              string     `json:"id"`
	OrderID         *string    `json:"pedido_id"`
	Code            string     `json:"codigo"`
	Amount          int64      `json:"valor"`
	AmountMajor     string     `json:"valor_decimal"`
	PaidAmount      int64      `json:"valor_pago"`
	PaidAmountMajor string     `json:"valor_pago_decimal"`
	Status          string     `json:"status"`
	Currency        string     `json:"moeda"`
	PaymentMethod   string     `json:"metodo_pagamento"`
	PaidAt          *time.Time `json:"pago_em"`
	CreatedAt       *time.Time `json:"criado_em"`
	UpdatedAt       *time.Time `json:"atualizado_em"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type getOrderHandler struct {
	orderStore  store.OrderStore
	chargeStore store.ChargeStore
}

func newGetOrderHandler(orderStore store.OrderStore, chargeStore store.ChargeStore) *getOrderHandler {
	return &getOrderHandler{
		orderStore:  orderStore,
		chargeStore: chargeStore,
	}
}

func (h *getOrderHandler) handle(c *gin.Context) {
	ctx := c.Request.Context()
	orderID := c.Param("id")

	order, err := h.orderStore.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Detail: detailNotFound})
			return
		}
		logger.Error(ctx, "Failed to get order", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}

	charges, err := h.chargeStore.ListByOrderID(ctx, orderID)
	if err != nil {
		logger.Error(ctx, "Failed to list charges", zap.String("order_id", orderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, orderResponse{
		Order:   mapEntityOrderToView(order),
		Charges: mapEntityChargesToView(charges),
	})
}

func mapEntityOrderToView(order *entity.Order) orderView {
	return orderView{
		ID:          order.ID,
		Code:        order.Code,
		Amount:      order.Amount,
		AmountMajor: order.AmountDecimal().StringFixed(2),
		Currency:    order.Currency,
		Status:      order.Status,
		Closed:      order.Closed,
		CustomerID:  order.CustomerID,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func mapEntityChargesToView(charges []*entity.Charge) []chargeView {
	views := make([]chargeView, 0, len(charges))
	for _, charge := range charges {
		views = append(views, chargeView{
			ID:              charge.ID,
			OrderID:         charge.OrderID,
			Code:            charge.Code,
			Amount:          charge.Amount,
			AmountMajor:     charge.AmountDecimal().StringFixed(2),
			PaidAmount:      charge.PaidAmount,
			PaidAmountMajor: charge.PaidAmountDecimal().StringFixed(2),
			Status:          charge.Status,
			Currency:        charge.Currency,
			PaymentMethod:   charge.PaymentMethod,
			PaidAt:          charge.PaidAt,
			CreatedAt:       charge.CreatedAt,
			UpdatedAt:       charge.UpdatedAt,
		})
	}
	return views
}
