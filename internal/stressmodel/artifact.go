package stressmodel

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

//go:embed default_model.json
var defaultArtifact []byte

var ErrNoArtifact = errors.New("no model artifact found")

// Scaling is one standard-scaler column: (x - Mean) / Scale.
type Scaling struct {
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
}

// Artifact is the serialized form of a trained model together with its preprocessing pipeline.
type Artifact struct {
	Name                string             `json:"name"`
	Version             string             `json:"version"`
	Intercept           float64            `json:"intercept"`
	Coefficients        map[string]float64 `json:"coefficients"`
	Scaler              map[string]Scaling `json:"scaler"`
	WorkoutLevels       map[string]float64 `json:"workout_intensity_levels"`
	DefaultWorkoutLevel float64            `json:"default_workout_intensity_level"`
	MinPrediction       float64            `json:"min_prediction"`
	MaxPrediction       float64            `json:"max_prediction"`
}

func (a *Artifact) validate() error {
	for _, name := range FeatureOrder {
		if _, ok := a.Coefficients[name]; !ok {
			return fmt.Errorf("artifact %q: missing coefficient for %s", a.Name, name)
		}
		if s, ok := a.Scaler[name]; ok && s.Scale == 0 {
			return fmt.Errorf("artifact %q: zero scale for %s", a.Name, name)
		}
	}
	if a.MaxPrediction != 0 && a.MaxPrediction < a.MinPrediction {
		return fmt.Errorf("artifact %q: max_prediction below min_prediction", a.Name)
	}
	return nil
}

// DefaultArtifact returns the artifact embedded in the binary.
func DefaultArtifact() (*Artifact, error) {
	return decodeArtifact(defaultArtifact)
}

// LoadArtifact reads an artifact from path. When path is a directory the most recently
// modified *.json file in it is used. An empty path yields the embedded default.
func LoadArtifact(path string) (*Artifact, error) {
	if path == "" {
		return DefaultArtifact()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat model artifact: %w", err)
	}
	if info.IsDir() {
		path, err = latestArtifact(path)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return decodeArtifact(data)
}

func latestArtifact(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read model directory: %w", err)
	}

	var latest string
	var latestMod int64
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest = filepath.Join(dir, e.Name())
			latestMod = mod
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w in %s", ErrNoArtifact, dir)
	}
	return latest, nil
}

func decodeArtifact(data []byte) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return &a, nil
}
