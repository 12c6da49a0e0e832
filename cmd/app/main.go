package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/config"
	"github.com/chris/library-lending/pkg/handlers"
	wshandlers "github.com/chris/library-lending/pkg/handlers/websockets"
	"github.com/chris/library-lending/pkg/lending"
	"github.com/chris/library-lending/pkg/middleware"
	"github.com/chris/library-lending/pkg/storage/backend"
	"github.com/chris/library-lending/pkg/websockets"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	defaultFees, err := cfg.DefaultLateFees()
	if err != nil {
		log.Fatalf("invalid late fee defaults: %v", err)
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var awsCfg aws.Config
	if cfg.StorageBackend == config.BackendDynamoDB || cfg.WebsocketAPIEndpoint != "" {
		if awsCfg, err = backend.LoadAWSConfig(ctx); err != nil {
			log.Fatal(err)
		}
	}

	store, closeStore, err := backend.Open(ctx, cfg, awsCfg, logger)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.StorageBackend, err)
	}
	defer closeStore()

	feeProvider := lending.NewSettingsFeeProvider(store, defaultFees)
	service := lending.NewService(store, feeProvider, logger)

	// Local dashboards connect straight to /ws; behind API Gateway messages go through the management API.
	hub := websockets.NewHub(logger)
	var publisher websockets.Publisher = hub
	if cfg.WebsocketAPIEndpoint != "" {
		publisher = websockets.NewPublisherWithClient(store, websockets.NewManagementClient(awsCfg, cfg.WebsocketAPIEndpoint), logger)
	}

	handler := handlers.NewApiHandler(store, service, feeProvider, publisher, logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	api.HandlerFromMux(handler, router)
	router.Handle("/ws", wshandlers.NewHandler(store, hub, logger))

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down server", "error", err)
		}
	}()

	logger.Info("starting server", slog.String("port", cfg.HTTPPort), slog.String("storage", cfg.StorageBackend))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
