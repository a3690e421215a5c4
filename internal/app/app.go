package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/app/kafka"
	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"github.com/Alcunha-R/demo-api-stone-host/internal/dependency"
	"github.com/Alcunha-R/demo-api-stone-host/internal/domain/orders"
	"github.com/Alcunha-R/demo-api-stone-host/internal/domain/webhooks"
	"github.com/Alcunha-R/demo-api-stone-host/internal/producers"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store"
)

// HealthChecker reports whether the database is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App represents the webhook ingestion application
type App struct {
	cfg            config.Config
	httpServer     *http.Server
	router         *gin.Engine
	webhooksServer *webhooks.Server
	ordersServer   *orders.Server
	kafkaProducer  *kafka.Producer
	notifier       dependency.Notifier
	health         HealthChecker
	logger         *zap.Logger
}

// NewApp creates a new App instance
func NewApp(
	cfg config.Config,
	orderStore store.OrderStore,
	chargeStore store.ChargeStore,
	eventStore store.EventStore,
	dbTransactor store.DBTransactor,
	health HealthChecker,
	logger *zap.Logger,
) (*App, error) {
	notifier := dependency.NewNotifier(cfg.Notifier, logger.Named("notifier"))

	// Публикация в Kafka включается только при наличии брокеров
	var (
		kafkaProducer *kafka.Producer
		orderProducer producers.OrderProducerI
	)
	if cfg.Kafka.Enabled() {
		var err error
		kafkaProducer, err = kafka.NewProducer(cfg.Kafka, logger.Named("kafka-producer"))
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
		}
		orderProducer = producers.NewOrderProducer(kafkaProducer, cfg.Kafka.OrderFeedTopic)
	} else {
		logger.Info("Kafka brokers not configured, order feed disabled")
	}

	webhooksServer := webhooks.NewServer(eventStore, orderStore, chargeStore, dbTransactor, notifier, orderProducer)
	ordersServer := orders.NewServer(orderStore, chargeStore)

	a := &App{
		cfg:            cfg,
		webhooksServer: webhooksServer,
		ordersServer:   ordersServer,
		kafkaProducer:  kafkaProducer,
		notifier:       notifier,
		health:         health,
		logger:         logger,
	}
	a.router = a.newRouter()
	a.httpServer = &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: a.router,
	}

	return a, nil
}

func (a *App) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(recovery(), tracing(), accessLog())

	router.GET("/health", a.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("")
	api.Use(requestTimeout(a.cfg.HTTP.RequestTimeout), maxBodyBytes(a.cfg.HTTP.MaxBodyBytes))
	a.webhooksServer.RegisterRoutes(api)
	a.ordersServer.RegisterRoutes(api)

	return router
}

func (a *App) handleHealth(c *gin.Context) {
	if err := a.health.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Handler returns the HTTP handler of the application
func (a *App) Handler() http.Handler {
	return a.router
}

// Replayer returns the raw event log replayer
func (a *App) Replayer() *webhooks.Replayer {
	return a.webhooksServer.Replayer()
}

// Start starts the HTTP server and blocks until it is stopped
func (a *App) Start() error {
	a.logger.Info("Starting HTTP server", zap.String("port", a.cfg.HTTP.Port))

	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}
	return nil
}

// Stop stops the application, letting in-flight requests finish
func (a *App) Stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", zap.Error(err))
	}

	if closer, ok := a.notifier.(interface{ Close() }); ok {
		closer.Close()
	}

	if a.kafkaProducer != nil {
		if err := a.kafkaProducer.Close(); err != nil {
			a.logger.Error("Error closing Kafka producer", zap.Error(err))
		}
	}

	a.logger.Info("Application stopped")
}
