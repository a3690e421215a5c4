package webhooks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
	"github.com/Alcunha-R/demo-api-stone-host/internal/metrics"
	"github.com/Alcunha-R/demo-api-stone-host/internal/webhook"
)

const (
	statusSuccess  = "sucesso"
	messageSuccess = "Webhook processado com sucesso"
	detailFailure  = "Falha ao processar e armazenar o webhook: "
)

type successResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type webhookHandler struct {
	reconciler *Reconciler
}

func newWebhookHandler(reconciler *Reconciler) *webhookHandler {
	return &webhookHandler{
		reconciler: reconciler,
	}
}

// handle validates the body, then reconciles it.
// 422 means nothing was stored, 500 means everything was rolled back.
func (h *webhookHandler) handle(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := c.GetRawData()
	if err != nil {
		metrics.WebhooksInvalidTotal.Inc()
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Detail: "payload too large"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	ev, err := webhook.Parse(ctx, body)
	if err != nil {
		metrics.WebhooksInvalidTotal.Inc()
		logger.Warn(ctx, "Rejected webhook", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	if _, err := h.reconciler.Reconcile(ctx, ev); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: detailFailure + err.Error()})
		return
	}

	c.JSON(http.StatusOK, successResponse{Status: statusSuccess, Message: messageSuccess})
}
