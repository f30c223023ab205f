// Package egfr implements the 2021 CKD-EPI creatinine equation (race-free
// variant) for estimating glomerular filtration rate.
package egfr

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrSex             = errors.New(`invalid sex: use "male" or "female"`)
	ErrAgeRange        = errors.New("age must not be negative")
	ErrCreatinineRange = errors.New("serum creatinine must be positive")
)

// Estimate returns the eGFR in mL/min/1.73m² for the given age (years), serum
// creatinine (mg/dL) and sex ("male" or "female", case-insensitive).
//
// The result is rounded half away from zero (math.Round). No range clamping
// is applied.
func Estimate(age, serumCreatinine float64, sex string) (int, error) {
	if age < 0 {
		return 0, ErrAgeRange
	}
	if serumCreatinine <= 0 {
		return 0, ErrCreatinineRange
	}

	var kappa, alpha, sexFactor float64
	switch strings.ToLower(sex) {
	case "female":
		kappa = 0.7
		alpha = -0.241
		sexFactor = 1.012
	case "male":
		kappa = 0.9
		alpha = -0.302
		sexFactor = 1.0
	default:
		return 0, ErrSex
	}

	ratio := serumCreatinine / kappa

	estimate := 142 *
		math.Pow(math.Min(ratio, 1), alpha) *
		math.Pow(math.Max(ratio, 1), -1.2) *
		math.Pow(0.9938, age) *
		sexFactor

	return int(math.Round(estimate)), nil
}
