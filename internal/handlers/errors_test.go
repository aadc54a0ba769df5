package handlers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/models"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/predictor"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/services"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/testdb"
	"github.com/gofiber/fiber/v2"
)

type okProvider struct{}

func (okProvider) Name() string { return "ok" }

func (okProvider) Predict(context.Context, predictor.Features) (*predictor.Result, error) {
	return &predictor.Result{Prediction: 2, Recommendation: "ok"}, nil
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"not found", fmt.Errorf("get: %w", services.ErrEntryNotFound), fiber.StatusNotFound, "Entry not found"},
		{"not owner", services.ErrNotOwner, fiber.StatusForbidden, "Not authorized to access this entry"},
		{"prediction unavailable", &services.PredictionUnavailableError{
			Entry: &models.Entry{ID: 1}, Kind: predictor.KindTimeout,
			Err: &predictor.Error{Kind: predictor.KindTimeout, Message: "slow"},
		}, fiber.StatusServiceUnavailable, "Model Service unavailable"},
		{"email taken", services.ErrEmailTaken, fiber.StatusBadRequest, "Email already registered"},
		{"bad credentials", services.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid email or password"},
		{"anything else", errors.New("disk full"), fiber.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := errorStatus(tt.err)
			if status != tt.status || detail != tt.detail {
				t.Errorf("errorStatus = %d %q, want %d %q", status, detail, tt.status, tt.detail)
			}
		})
	}
}

func TestStorageFailuresMapToInternalError(t *testing.T) {
	tables := []struct {
		name  string
		model any
	}{
		{"entry write", &models.Entry{}},
		{"prediction write", &models.Prediction{}},
	}

	for _, tt := range tables {
		t.Run(tt.name, func(t *testing.T) {
			db := testdb.Open(t)
			user := &models.User{Email: "a@example.com", Password: "x"}
			if err := db.Create(user).Error; err != nil {
				t.Fatalf("create user: %v", err)
			}
			if err := db.Migrator().DropTable(tt.model); err != nil {
				t.Fatalf("drop table: %v", err)
			}

			date := models.NewDate(2024, time.March, 4)
			sleep, screen, stress, workout := 7.5, 4.0, 3, "moderate"
			req := &dto.EntryRequest{
				Date: &date, SleepHours: &sleep, WorkoutIntensity: &workout,
				ScreenTime: &screen, StressLevel: &stress,
			}

			_, err := services.NewEntryOrchestrator(db, okProvider{}).CreateEntry(context.Background(), user, req)
			if err == nil {
				t.Fatal("expected storage error")
			}
			status, detail := errorStatus(err)
			if status != fiber.StatusInternalServerError || detail != "Internal server error" {
				t.Errorf("errorStatus = %d %q, want 500", status, detail)
			}
		})
	}
}
