package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/models"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/predictor"
	"gorm.io/gorm"
)

// PredictionUnavailableError is returned when the entry was stored but the
// provider could not produce a prediction for it.
type PredictionUnavailableError struct {
	Entry *models.Entry
	Kind  predictor.FailureKind
	Err   error
}

func (e *PredictionUnavailableError) Error() string {
	return fmt.Sprintf("prediction unavailable for entry %d (%s): %v", e.Entry.ID, e.Kind, e.Err)
}

func (e *PredictionUnavailableError) Unwrap() error { return e.Err }

// EntryOrchestrator stores an entry, asks the provider for a prediction and
// stores the prediction. The entry write is committed on its own, so a provider
// failure never removes it.
type EntryOrchestrator struct {
	db       *gorm.DB
	provider predictor.Provider
}

func NewEntryOrchestrator(db *gorm.DB, provider predictor.Provider) *EntryOrchestrator {
	return &EntryOrchestrator{db: db, provider: provider}
}

func (o *EntryOrchestrator) CreateEntry(ctx context.Context, caller *models.User, req *dto.EntryRequest) (*models.Entry, error) {
	entry := &models.Entry{UserID: caller.ID}
	req.Apply(entry)

	if err := o.db.WithContext(ctx).Create(entry).Error; err != nil {
		metrics.RecordEntryCreated(metrics.EntryStorageError)
		slog.ErrorContext(ctx, "failed to store entry",
			"action", "create_entry", "user_id", userIDAttr(caller), "error", err)
		return nil, fmt.Errorf("failed to store entry: %w", err)
	}

	start := time.Now()
	result, err := o.provider.Predict(ctx, predictor.FeaturesFromEntry(entry))
	elapsed := time.Since(start)

	if err != nil {
		kind, ok := predictor.KindOf(err)
		if !ok {
			kind = predictor.KindResponse
		}
		metrics.RecordPrediction(o.provider.Name(), string(kind), elapsed)
		metrics.RecordEntryCreated(metrics.EntryWithoutPrediction)
		slog.WarnContext(ctx, "prediction provider failed",
			"action", "create_entry",
			"provider", o.provider.Name(),
			"failure_kind", string(kind),
			"entry_id", entry.ID,
			"user_id", userIDAttr(caller),
			"latency_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return nil, &PredictionUnavailableError{Entry: entry, Kind: kind, Err: err}
	}
	metrics.RecordPrediction(o.provider.Name(), metrics.OutcomeSuccess, elapsed)

	prediction := &models.Prediction{
		UserID:         caller.ID,
		EntryID:        entry.ID,
		Prediction:     result.Prediction,
		Recommendation: result.Recommendation,
	}
	if err := o.db.WithContext(ctx).Create(prediction).Error; err != nil {
		metrics.RecordEntryCreated(metrics.EntryStorageError)
		slog.ErrorContext(ctx, "failed to store prediction",
			"action", "create_entry", "entry_id", entry.ID, "user_id", userIDAttr(caller), "error", err)
		return nil, fmt.Errorf("failed to store prediction for entry %d: %w", entry.ID, err)
	}

	metrics.RecordEntryCreated(metrics.EntryWithPrediction)
	entry.Prediction = prediction
	return entry, nil
}

func userIDAttr(u *models.User) string {
	return fmt.Sprint(u.ID)
}
