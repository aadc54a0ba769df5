package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/database"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db      *gorm.DB
	version string
}

func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		DB:        dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
