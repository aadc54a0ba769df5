// Package app wires configuration, storage, the prediction provider and the
// HTTP layer into a Fiber application.
package app

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/config"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/predictor"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/routes"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/services"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/stressmodel"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// NewProvider picks the prediction provider named by PREDICTION_MODE.
// Unknown modes fall back to the remote client.
func NewProvider(cfg *config.Config, model *stressmodel.Model) predictor.Provider {
	switch cfg.PredictionMode {
	case config.PredictionModeLocal:
		return predictor.NewLocalProvider(model)
	case config.PredictionModeRemote:
	default:
		slog.Warn("unknown prediction mode, using remote", "mode", cfg.PredictionMode)
	}
	return predictor.NewHTTPClient(cfg.ModelServiceURL, cfg.ModelServiceTimeout)
}

// New builds the HTTP application. model may be nil, in which case POST /predict
// answers 503.
func New(cfg *config.Config, db *gorm.DB, provider predictor.Provider, model *stressmodel.Model) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		AppName:      "stresscast",
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestContext())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	authService := services.NewAuthService(db, cfg)
	entryService := services.NewEntryService(db)
	orchestrator := services.NewEntryOrchestrator(db, provider)

	routes.Setup(app, cfg, authService, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		Entry:   handlers.NewEntryHandler(orchestrator, entryService),
		Predict: handlers.NewPredictHandler(model),
		Health:  handlers.NewHealthHandler(db, cfg.AppVersion),
	})

	return app
}
