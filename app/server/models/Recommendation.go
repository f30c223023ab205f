package models

import "gorm.io/gorm"

// Recommendation is a clinical stage band over an inclusive eGFR range.
// Keeping the bands non-overlapping and jointly covering the valid range is
// the responsibility of whoever maintains the table; lookups order by
// egfr_range_low so touching boundaries resolve to the lower stage.
type Recommendation struct {
	gorm.Model

	Stage           string  `gorm:"column:stage"`
	EGFRRangeLow    float64 `gorm:"column:egfr_range_low"`
	EGFRRangeHigh   float64 `gorm:"column:egfr_range_high"`
	LifestyleAdvice string  `gorm:"column:lifestyle_advice"`
	FoodAdvice      string  `gorm:"column:food_advice"`
	MedicalAdvice   string  `gorm:"column:medical_advice"`
}
