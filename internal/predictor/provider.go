// Package predictor talks to whatever produces stress predictions: the remote model
// service over HTTP or the in-process regression model.
package predictor

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/models"
)

// Features is the payload sent to a provider. The JSON keys are the model service wire contract.
type Features struct {
	SleepHours       float64 `json:"sleep_hours"`
	WorkoutIntensity string  `json:"workout_intensity"`
	SupplementIntake *string `json:"supplement_intake"`
	ScreenTime       float64 `json:"screen_time"`
	StressLevel      int     `json:"stress_level"`
	Date             string  `json:"date"`
}

type Result struct {
	Prediction     float64 `json:"prediction"`
	Recommendation string  `json:"recommendation"`
}

// Provider returns a prediction or an *Error.
type Provider interface {
	Name() string
	Predict(ctx context.Context, features Features) (*Result, error)
}

func FeaturesFromEntry(e *models.Entry) Features {
	return Features{
		SleepHours:       e.SleepHours,
		WorkoutIntensity: e.WorkoutIntensity,
		SupplementIntake: e.SupplementIntake,
		ScreenTime:       e.ScreenTime,
		StressLevel:      e.StressLevel,
		Date:             e.Date.String(),
	}
}
