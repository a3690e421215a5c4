package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/app"
	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
	"github.com/Alcunha-R/demo-api-stone-host/internal/metrics"
	"github.com/Alcunha-R/demo-api-stone-host/internal/store/postgres"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "stonehook",
		Short:         "Stone payment webhook ingestion service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(replayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE:  runServe,
	}
}

// service holds what every command needs
type service struct {
	cfg   config.Config
	log   *zap.Logger
	store *postgres.Store
	app   *app.App
}

// bootstrap загружает конфигурацию, логгер, хранилище и приложение
func bootstrap(ctx context.Context) (*service, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.InitLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// trace id на весь цикл работы процесса
	log = log.With(zap.String("app_trace_id", uuid.New().String()))
	logger.SetLogger(log)

	store, err := postgres.NewStore(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	application, err := app.NewApp(
		cfg,
		store.OrderStore(),
		store.ChargeStore(),
		store.EventStore(),
		store.DBTransactor(),
		store,
		log,
	)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return &service{cfg: cfg, log: log, store: store, app: application}, nil
}

func (r *service) close() {
	r.app.Stop(context.Background())
	if err := r.store.Close(); err != nil {
		r.log.Error("Failed to close store", zap.Error(err))
	}
	_ = r.log.Sync()
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	metrics.Register()

	errCh := make(chan error, 1)
	go func() {
		errCh <- rt.app.Start()
	}()

	select {
	case <-ctx.Done():
		rt.log.Info("Received signal, shutting down")
		return nil
	case err := <-errCh:
		return err
	}
}
