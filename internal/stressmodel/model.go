// Package stressmodel runs the in-process stress regression: a preprocessing pipeline
// (ordinal encoding plus standard scaling) feeding a linear model loaded from a JSON artifact.
package stressmodel

import (
	"math"
	"strings"
)

const (
	FeatureSleepHours       = "sleep_hours"
	FeatureWorkoutIntensity = "workout_intensity"
	FeatureSupplementCount  = "supplement_count"
	FeatureScreenTime       = "screen_time"
)

// FeatureOrder is the column order of the transformed feature vector.
var FeatureOrder = []string{
	FeatureSleepHours,
	FeatureWorkoutIntensity,
	FeatureSupplementCount,
	FeatureScreenTime,
}

const (
	lowRecommendation      = "Low predicted stress. Maintain your current recovery and screen-time habits."
	moderateRecommendation = "Moderate predicted stress. Prioritize sleep consistency and reduce screen time where possible."
	highRecommendation     = "High predicted stress. Focus on recovery, lower evening screen time, and avoid overtraining."
)

// Input is the raw feature set of one day.
type Input struct {
	SleepHours       float64
	WorkoutIntensity string
	SupplementIntake *string
	ScreenTime       float64
}

// Pipeline turns an Input into the scaled vector the regression was fitted on.
type Pipeline struct {
	scaler              map[string]Scaling
	workoutLevels       map[string]float64
	defaultWorkoutLevel float64
}

func (p *Pipeline) Transform(in Input) []float64 {
	raw := map[string]float64{
		FeatureSleepHours:       in.SleepHours,
		FeatureWorkoutIntensity: p.encodeWorkout(in.WorkoutIntensity),
		FeatureSupplementCount:  float64(CountSupplements(in.SupplementIntake)),
		FeatureScreenTime:       in.ScreenTime,
	}

	out := make([]float64, len(FeatureOrder))
	for i, name := range FeatureOrder {
		v := raw[name]
		if s, ok := p.scaler[name]; ok {
			v = (v - s.Mean) / s.Scale
		}
		out[i] = v
	}
	return out
}

func (p *Pipeline) encodeWorkout(intensity string) float64 {
	if level, ok := p.workoutLevels[strings.ToLower(strings.TrimSpace(intensity))]; ok {
		return level
	}
	return p.defaultWorkoutLevel
}

// CountSupplements counts the non-empty comma separated items of a supplement intake note.
func CountSupplements(intake *string) int {
	if intake == nil {
		return 0
	}
	n := 0
	for _, part := range strings.Split(*intake, ",") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

type Model struct {
	name         string
	version      string
	intercept    float64
	coefficients []float64
	pipeline     *Pipeline
	min, max     float64
}

func New(a *Artifact) (*Model, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	coef := make([]float64, len(FeatureOrder))
	for i, name := range FeatureOrder {
		coef[i] = a.Coefficients[name]
	}

	levels := make(map[string]float64, len(a.WorkoutLevels))
	for k, v := range a.WorkoutLevels {
		levels[strings.ToLower(k)] = v
	}

	return &Model{
		name:         a.Name,
		version:      a.Version,
		intercept:    a.Intercept,
		coefficients: coef,
		pipeline: &Pipeline{
			scaler:              a.Scaler,
			workoutLevels:       levels,
			defaultWorkoutLevel: a.DefaultWorkoutLevel,
		},
		min: a.MinPrediction,
		max: a.MaxPrediction,
	}, nil
}

// Load builds a model from the artifact at path (see LoadArtifact).
func Load(path string) (*Model, error) {
	a, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	return New(a)
}

func (m *Model) Name() string { return m.name }
func (m *Model) Version() string { return m.version }

func (m *Model) Predict(in Input) float64 {
	x := m.pipeline.Transform(in)
	y := m.intercept
	for i, v := range x {
		y += m.coefficients[i] * v
	}
	if m.max > m.min {
		y = math.Min(math.Max(y, m.min), m.max)
	}
	return y
}

func Recommend(prediction float64) string {
	switch {
	case prediction < 3.0:
		return lowRecommendation
	case prediction < 6.0:
		return moderateRecommendation
	default:
		return highRecommendation
	}
}
