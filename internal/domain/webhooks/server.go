package webhooks

import (
	"github.com/gin-gonic/gin"

	"github.com/Alcunha-R/demo-api-stone-host/internal/dependency"
	"github.com/Alcunha-R/demo-api-stone-host/internal/producers"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
)

type Server struct {
	reconciler     *Reconciler
	replayer       *Replayer
	webhookHandler *webhookHandler
}

func NewServer(
	eventStore store.EventStore,
	orderStore store.OrderStore,
	chargeStore store.ChargeStore,
	dbTransactor store.DBTransactor,
	notifier dependency.Notifier,
	orderProducer producers.OrderProducerI,
) *Server {
	reconciler := NewReconciler(eventStore, orderStore, chargeStore, dbTransactor, notifier, orderProducer)
	return &Server{
		reconciler:     reconciler,
		replayer:       NewReplayer(eventStore, reconciler),
		webhookHandler: newWebhookHandler(reconciler),
	}
}

// RegisterRoutes mounts the provider callback
func (s *Server) RegisterRoutes(r gin.IRouter) {
	r.POST("/webhook/stone", s.webhookHandler.handle)
}

func (s *Server) Replayer() *Replayer {
	return s.replayer
}
