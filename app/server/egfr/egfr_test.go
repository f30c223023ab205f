package egfr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateGoldenFemale(t *testing.T) {
	// kappa=0.7 branch: ratio > 1, so only the max term applies
	got, err := Estimate(60, 1.0, "female")
	require.NoError(t, err)
	assert.Equal(t, 64, got)
}

func TestEstimateGoldenMale(t *testing.T) {
	got, err := Estimate(40, 1.2, "male")
	require.NoError(t, err)
	assert.Equal(t, 78, got)
}

func TestEstimateSexCaseInsensitive(t *testing.T) {
	lower, err := Estimate(60, 1.0, "female")
	require.NoError(t, err)

	mixed, err := Estimate(60, 1.0, "Female")
	require.NoError(t, err)

	assert.Equal(t, lower, mixed)
}

func TestEstimateValidation(t *testing.T) {
	_, err := Estimate(60, 1.0, "other")
	assert.ErrorIs(t, err, ErrSex)

	_, err = Estimate(-1, 1.0, "male")
	assert.ErrorIs(t, err, ErrAgeRange)

	_, err = Estimate(60, 0, "male")
	assert.ErrorIs(t, err, ErrCreatinineRange)

	_, err = Estimate(60, -0.5, "female")
	assert.ErrorIs(t, err, ErrCreatinineRange)
}

func TestEstimateMonotonicNonIncreasingInCreatinine(t *testing.T) {
	for _, sex := range []string{"male", "female"} {
		prev := 0
		for i, creatinine := 0, 0.3; creatinine <= 10; i, creatinine = i+1, creatinine+0.1 {
			got, err := Estimate(50, creatinine, sex)
			require.NoError(t, err)
			assert.Positive(t, got, "sex=%s creatinine=%.1f", sex, creatinine)
			if i > 0 {
				assert.LessOrEqual(t, got, prev, "sex=%s creatinine=%.1f", sex, creatinine)
			}
			prev = got
		}
	}
}
