package predictor

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/stressmodel"
)

// LocalProvider runs the regression model inside the process.
type LocalProvider struct {
	model *stressmodel.Model
}

func NewLocalProvider(model *stressmodel.Model) *LocalProvider {
	return &LocalProvider{model: model}
}

func (p *LocalProvider) Name() string { return "local" }

func (p *LocalProvider) Predict(ctx context.Context, features Features) (*Result, error) {
	if p.model == nil {
		return nil, configError("model artifacts are not loaded", nil)
	}
	if err := ctx.Err(); err != nil {
		if isTimeout(err) {
			return nil, timeoutError("prediction deadline exceeded", err)
		}
		return nil, connectionError("prediction cancelled", err)
	}

	prediction := p.model.Predict(stressmodel.Input{
		SleepHours:       features.SleepHours,
		WorkoutIntensity: features.WorkoutIntensity,
		SupplementIntake: features.SupplementIntake,
		ScreenTime:       features.ScreenTime,
	})

	return &Result{
		Prediction:     prediction,
		Recommendation: stressmodel.Recommend(prediction),
	}, nil
}
