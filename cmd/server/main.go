package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpDelivery "github.com/tair/barcode-inventory/internal/delivery/http"
	"github.com/tair/barcode-inventory/internal/facade"
	"github.com/tair/barcode-inventory/internal/migrate"
	"github.com/tair/barcode-inventory/pkg/logger"
	"github.com/tair/barcode-inventory/pkg/storage"
)

func main() {
	_ = godotenv.Load()

	// Initialize logger
	serviceName := getEnv("SERVICE_NAME", "inventory-server")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting inventory server")

	// Open the data store
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		var err error
		dataDir, err = storage.DefaultDir()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to resolve data directory")
		}
	}

	store, err := storage.Open(dataDir)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open data store")
	}
	logger.Logger.Info().Str("data_dir", store.Dir()).Msg("Data store opened")

	// Upgrade the on-disk format before serving
	if err := migrate.Run(store, migrate.Steps()); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize the engine facade with Wire DI
	engine, err := facade.InitializeFacade(store)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize engine")
	}

	// Setup router
	router := mux.NewRouter()

	middlewareConfig := httpDelivery.DefaultMiddlewareConfig()
	httpDelivery.RegisterMiddlewares(router, middlewareConfig)

	catalogHandler := httpDelivery.NewCatalogHandler(engine)
	catalogHandler.RegisterRoutes(router)

	ledgerHandler := httpDelivery.NewLedgerHandler(engine)
	ledgerHandler.RegisterRoutes(router)
	ledgerHandler.RegisterHealthCheck(router, store)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	handler := httpDelivery.SetupCORS(middlewareConfig)(router)

	httpPort := getEnv("HTTP_PORT", "3001")
	srv := &http.Server{
		Addr:    ":" + httpPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
