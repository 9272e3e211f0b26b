package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"dps.app/disease-prediction/internal/api"
	"dps.app/disease-prediction/internal/config"
	"dps.app/disease-prediction/internal/core"
	"dps.app/disease-prediction/internal/logging"
	"dps.app/disease-prediction/internal/metrics"
	"dps.app/disease-prediction/internal/model"
	"dps.app/disease-prediction/internal/notify"
	"dps.app/disease-prediction/internal/report"
	"dps.app/disease-prediction/internal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	logger, err := logging.New(config.AppConfig.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Command line flag to run migrations and exit
	migrateOnlyFlag := flag.Bool("migrate-only", false, "Apply pending schema migrations and exit")
	flag.Parse()

	// Initialize record store (runs migrations on open)
	recordStore, err := store.New(config.AppConfig.DatabasePath)
	if err != nil {
		logger.Fatalw("Failed to initialize database", "error", err)
	}
	defer recordStore.Close()

	if *migrateOnlyFlag {
		version, err := recordStore.SchemaVersion(context.Background())
		if err != nil {
			logger.Fatalw("Failed to read schema version", "error", err)
		}
		logger.Infow("Migrations applied", "schema_version", version)
		os.Exit(0)
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatalw("Failed to register metrics", "error", err)
	}

	// Load the pre-trained classifiers once at startup
	adapter, err := model.NewAdapter(config.AppConfig.ModelManifest)
	if err != nil {
		logger.Fatalw("Failed to load model artifacts", "error", err)
	}

	// Outbound email is optional; without credentials the pipeline skips the
	// notification stage.
	var notifier core.Notifier
	if config.AppConfig.MailEnabled() {
		notifier = notify.NewMailer(
			config.AppConfig.SMTPHost,
			config.AppConfig.SMTPPort,
			config.AppConfig.SMTPUsername,
			config.AppConfig.SMTPPassword,
			config.AppConfig.SenderName,
			config.AppConfig.WebAppURL,
			logger,
		)
	} else {
		logger.Warn("EMAIL_ADDRESS/EMAIL_PASSWORD not set, result emails disabled")
	}

	predictionService := core.NewPredictionService(recordStore, adapter, report.NewBuilder(), notifier, logger)
	historyService := core.NewHistoryService(recordStore, logger)
	feedbackService := core.NewFeedbackService(config.AppConfig.FeedbackEndpoint, logger)

	apiHandler := api.NewAPIHandler(predictionService, historyService, feedbackService, logger)
	router := api.NewRouter(apiHandler)

	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // PDF generation plus SMTP submission can take a while
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Infow("Starting server", "addr", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("Could not listen", "addr", serverAddr, "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give active connections time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalw("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exiting gracefully")
}
