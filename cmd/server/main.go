package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/app"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/config"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/database"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/logging"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/stressmodel"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.PredictionMode == config.PredictionModeRemote && cfg.ModelServiceURL == "" {
		// Entries are still stored; every prediction fails with config_missing.
		slog.Warn("MODEL_SERVICE_URL is not set, predictions will be unavailable")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := database.MigrateLogs(db); err != nil {
		slog.Error("system log migration failed", "error", err)
		os.Exit(1)
	}

	// ERROR+ records are also batched into system_logs
	pgLogHandler := logging.NewPGHandler(db, 5*time.Second)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewStdoutHandler(os.Stdout),
		pgLogHandler,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
			Release:          cfg.AppVersion,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	// A missing model only disables POST /predict and local mode.
	model, err := stressmodel.Load(cfg.ModelArtifactPath)
	if err != nil {
		slog.Error("model artifacts not loaded", "path", cfg.ModelArtifactPath, "error", err)
		model = nil
	} else {
		slog.Info("model loaded", "name", model.Name(), "version", model.Version())
	}

	provider := app.NewProvider(cfg, model)
	slog.Info("prediction provider configured", "provider", provider.Name(), "timeout", cfg.ModelServiceTimeout)

	server := app.New(cfg, db, provider, model)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := server.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
