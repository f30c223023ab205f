package classifier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, m *Model) string {
	t.Helper()

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ckd_model.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func artifact() *Model {
	weights := make([]float64, NumFeatures)
	weights[6] = 1 // serum_creatinine drives the toy model

	scales := make([]float64, NumFeatures)
	for i := range scales {
		scales[i] = 1
	}

	return &Model{
		Features:  FeatureOrder[:],
		Means:     make([]float64, NumFeatures),
		Scales:    scales,
		Weights:   weights,
		Intercept: -2,
	}
}

func TestLoadAndPredict(t *testing.T) {
	model, err := Load(writeArtifact(t, artifact()))
	require.NoError(t, err)

	var features [NumFeatures]float64

	features[6] = 0.9
	assert.Equal(t, 0, model.Predict(features))

	features[6] = 8.5
	assert.Equal(t, 1, model.Predict(features))
}

func TestPredictIsDeterministic(t *testing.T) {
	model, err := Load(writeArtifact(t, artifact()))
	require.NoError(t, err)

	var features [NumFeatures]float64
	features[6] = 4.2

	first := model.Predict(features)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, model.Predict(features))
	}
}

func TestLoadRejectsBadArtifacts(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	short := artifact()
	short.Weights = short.Weights[:5]
	_, err = Load(writeArtifact(t, short))
	assert.Error(t, err)

	zeroScale := artifact()
	zeroScale.Scales[3] = 0
	_, err = Load(writeArtifact(t, zeroScale))
	assert.Error(t, err)
}

func TestFeatureOrderWidth(t *testing.T) {
	assert.Len(t, FeatureOrder, NumFeatures)
}
