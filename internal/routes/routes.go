package routes

import (
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/config"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Entry   *handlers.EntryHandler
	Predict *handlers.PredictHandler
	Health  *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, users middleware.UserLookup, h Handlers) {
	app.Get("/health", h.Health.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// General rate limiter, per IP
	app.Use(middleware.RateLimit(cfg.RateLimitPerMinute))

	app.Post("/predict", h.Predict.Predict)

	jwt := middleware.JWTProtected(cfg)
	currentUser := middleware.CurrentUser(users)

	// Auth-specific rate limit (stricter)
	auth := app.Group("/auth", middleware.RateLimit(cfg.AuthRateLimitPerMinute))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", jwt, currentUser, h.Auth.Me)
	auth.Delete("/account", jwt, currentUser, h.Auth.DeleteAccount)

	entries := app.Group("/entries", jwt, currentUser)
	entries.Post("/", h.Entry.Create)
	entries.Get("/", h.Entry.List)
	entries.Get("/:id", h.Entry.Get)
	entries.Put("/:id", h.Entry.Update)
	entries.Delete("/:id", h.Entry.Delete)
}
