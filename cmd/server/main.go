package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"dispatch-board-service/internal/infrastructure/config"
	"dispatch-board-service/internal/infrastructure/persistence"
	"dispatch-board-service/internal/infrastructure/router"
	"dispatch-board-service/internal/interface/api"
	memoryRepo "dispatch-board-service/internal/interface/repository"
	"dispatch-board-service/internal/usecase"
	"dispatch-board-service/pkg/logger"
	"dispatch-board-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Dispatch Board Service", "version", cfg.AppVersion, "seedSource", cfg.SeedSource)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Import seed shipments; mutations stay in memory
	seedRepository, closeSeed, err := persistence.OpenSeedRepository(ctx, cfg.SeedSource, cfg)
	if err != nil {
		log.Fatal("Failed to open seed source", "source", cfg.SeedSource, "error", err)
	}
	seed, err := seedRepository.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load seed shipments", "source", cfg.SeedSource, "error", err)
	}
	if err := closeSeed(ctx); err != nil {
		log.Warn("Failed to close seed source", "error", err)
	}
	log.Info("Loaded seed shipments", "count", len(seed))

	// Set up repositories
	shipmentRepo, err := memoryRepo.NewMemoryShipmentRepository(seed)
	if err != nil {
		log.Fatal("Invalid seed shipments", "error", err)
	}
	transitionRepo := memoryRepo.NewMemoryTransitionRepository()

	// Set up usecases
	m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)
	workflow := usecase.NewDispatchWorkflow(shipmentRepo, transitionRepo, cfg.Carriers, m, log.With("component", "workflow"))
	customers := usecase.NewCustomerAggregator(shipmentRepo, m, log.With("component", "customers"))
	details := usecase.NewShipmentDetailService(shipmentRepo)

	// Set up HTTP server
	handler := api.NewHandler(workflow, customers, details, shipmentRepo, m, log, cfg.AppVersion)
	e := router.NewHTTPRouter(handler, m, prometheus.DefaultGatherer, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	log.Info("Dispatch Board Service stopped")
}
