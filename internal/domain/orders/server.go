package orders

import (
	"github.com/gin-gonic/gin"

	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
)

type Server struct {
	getOrderHandler *getOrderHandler
}

func NewServer(orderStore store.OrderStore, chargeStore store.ChargeStore) *Server {
	return &Server{
		getOrderHandler: newGetOrderHandler(orderStore, chargeStore),
	}
}

// RegisterRoutes mounts the order query
func (s *Server) RegisterRoutes(r gin.IRouter) {
	r.GET("/pedidos/:id", s.getOrderHandler.handle)
}
