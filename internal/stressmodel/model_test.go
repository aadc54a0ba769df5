package stressmodel

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func interceptOnly(intercept float64) *Artifact {
	return &Artifact{
		Name:      "constant",
		Intercept: intercept,
		Coefficients: map[string]float64{
			FeatureSleepHours: 0, FeatureWorkoutIntensity: 0, FeatureSupplementCount: 0, FeatureScreenTime: 0,
		},
		MinPrediction: 1,
		MaxPrediction: 10,
	}
}

func TestDefaultModelPredicts(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := m.Predict(Input{
		SleepHours:       7.5,
		WorkoutIntensity: "moderate",
		SupplementIntake: strPtr("magnesium"),
		ScreenTime:       4.0,
	})

	// 4.6 - 1.1*(0.5/1.5) - 0.4*(0.5/1.0) - 0.2*0 + 1.2*(-1/2.5)
	want := 4.6 - 1.1/3 - 0.2 - 0.48
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Predict = %v, want %v", got, want)
	}
	if Recommend(got) != moderateRecommendation {
		t.Fatalf("Recommend(%v) = %q", got, Recommend(got))
	}
}

func TestPredictionIsClamped(t *testing.T) {
	tests := []struct {
		intercept float64
		want      float64
	}{
		{-4, 1},
		{42, 10},
		{5.5, 5.5},
	}
	for _, tt := range tests {
		m, err := New(interceptOnly(tt.intercept))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got := m.Predict(Input{}); got != tt.want {
			t.Errorf("intercept %v: Predict = %v, want %v", tt.intercept, got, tt.want)
		}
	}
}

func TestRecommendThresholds(t *testing.T) {
	tests := []struct {
		prediction float64
		want       string
	}{
		{1.0, lowRecommendation},
		{2.99, lowRecommendation},
		{3.0, moderateRecommendation},
		{5.99, moderateRecommendation},
		{6.0, highRecommendation},
		{10, highRecommendation},
	}
	for _, tt := range tests {
		if got := Recommend(tt.prediction); got != tt.want {
			t.Errorf("Recommend(%v) = %q, want %q", tt.prediction, got, tt.want)
		}
	}
}

func TestPipelineWorkoutEncoding(t *testing.T) {
	a, err := DefaultArtifact()
	if err != nil {
		t.Fatalf("DefaultArtifact: %v", err)
	}
	m, err := New(a)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	high := m.pipeline.Transform(Input{WorkoutIntensity: " HIGH "})
	unknown := m.pipeline.Transform(Input{WorkoutIntensity: "yoga"})

	if high[1] != (3-1.5)/1.0 {
		t.Errorf("high encoded as %v", high[1])
	}
	if unknown[1] != 0 {
		t.Errorf("unknown intensity should encode to the scaler mean, got %v", unknown[1])
	}
}

func TestCountSupplements(t *testing.T) {
	tests := []struct {
		in   *string
		want int
	}{
		{nil, 0},
		{strPtr(""), 0},
		{strPtr("magnesium"), 1},
		{strPtr("magnesium, vitamin d"), 2},
		{strPtr(" , omega-3, ,creatine"), 2},
	}
	for _, tt := range tests {
		if got := CountSupplements(tt.in); got != tt.want {
			t.Errorf("CountSupplements(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLoadArtifactFromDirectoryPicksNewest(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string, mod time.Time) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
	}
	body := func(name string) string {
		return `{"name":"` + name + `","intercept":2,"coefficients":{"sleep_hours":0,"workout_intensity":0,"supplement_count":0,"screen_time":0}}`
	}

	now := time.Now()
	write("old.json", body("old"), now.Add(-time.Hour))
	write("new.json", body("new"), now)
	write("notes.txt", "ignored", now.Add(time.Hour))

	a, err := LoadArtifact(dir)
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}
	if a.Name != "new" {
		t.Fatalf("loaded %q, want new", a.Name)
	}
}

func TestLoadArtifactErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadArtifact(dir); !errors.Is(err, ErrNoArtifact) {
		t.Errorf("empty dir: err = %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name":"bad","coefficients":{"sleep_hours":1}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArtifact(bad); err == nil {
		t.Error("artifact missing coefficients should fail")
	}

	if _, err := LoadArtifact(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
}
