// Package classifier loads the pre-trained CKD detection model and runs
// inference on it. The artifact is produced by an external training pipeline
// and exported as JSON: feature standardization parameters plus logistic
// regression weights. The loaded model is read-only and safe for concurrent
// use across requests.
package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// NumFeatures is the fixed width of the model input vector.
const NumFeatures = 13

// FeatureOrder is the exact input order the model was trained with.
var FeatureOrder = [NumFeatures]string{
	"age",
	"blood_pressure",
	"specific_gravity",
	"albumin",
	"blood_glucose_random",
	"blood_urea",
	"serum_creatinine",
	"sodium",
	"hemoglobin",
	"packed_cell_volume",
	"red_blood_cell_count",
	"hypertension",
	"diabetes_mellitus",
}

type Model struct {
	Features  []string  `json:"features"`
	Means     []float64 `json:"means"`
	Scales    []float64 `json:"scales"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Load reads and validates a model artifact from disk. Called once at process
// start; the returned model is then injected into whatever needs it.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}

	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Weights) != NumFeatures {
		return fmt.Errorf("expected %d weights, got %d", NumFeatures, len(m.Weights))
	}
	if len(m.Means) != NumFeatures || len(m.Scales) != NumFeatures {
		return fmt.Errorf("expected %d means and scales, got %d and %d", NumFeatures, len(m.Means), len(m.Scales))
	}
	for i, s := range m.Scales {
		if s == 0 {
			return fmt.Errorf("scale for feature %d is zero", i)
		}
	}
	return nil
}

// Predict runs a forward pass over a standardized feature vector and returns
// the binary label: 1 for CKD detected, 0 otherwise.
func (m *Model) Predict(features [NumFeatures]float64) int {
	// Sigmoid thresholded at 0.5 is equivalent to the sign of the logit.
	z := m.Intercept
	for i, w := range m.Weights {
		z += w * (features[i] - m.Means[i]) / m.Scales[i]
	}
	if z > 0 {
		return 1
	}
	return 0
}
