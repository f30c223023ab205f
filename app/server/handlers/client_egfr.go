package handlers

import (
	"errors"
	"net/http"

	"kidney-care-ai/app/server/egfr"
	"kidney-care-ai/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type egfrRequest struct {
	Age             *float64 `json:"age"`
	SerumCreatinine *float64 `json:"serum_creatinine"`
	Gender          *string  `json:"gender"`
}

func (a *App) CalculateEGFR(c echo.Context) error {
	rctx := c.Request().Context()

	var req egfrRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Age == nil || req.SerumCreatinine == nil || req.Gender == nil {
		return a.er(c, http.StatusBadRequest, "Missing required fields")
	}

	estimate, err := egfr.Estimate(*req.Age, *req.SerumCreatinine, *req.Gender)
	if err != nil {
		switch {
		case errors.Is(err, egfr.ErrSex):
			return a.er(c, http.StatusBadRequest, `Invalid gender. Use "male" or "female"`)
		case errors.Is(err, egfr.ErrAgeRange), errors.Is(err, egfr.ErrCreatinineRange):
			return a.er(c, http.StatusBadRequest, err.Error())
		default:
			a.l.Error("failed to estimate egfr", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "eGFR calculation failed")
		}
	}

	// inclusive on both ends; ordering makes touching boundaries resolve to
	// the lower stage band
	var band models.Recommendation
	if err := a.db.WithContext(rctx).
		Where("egfr_range_low <= ? AND egfr_range_high >= ?", estimate, estimate).
		Order("egfr_range_low ASC").
		First(&band).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "No recommendations available for this eGFR level")
		}
		a.l.Error("failed to find recommendation band", zap.Int("egfr", estimate), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "eGFR calculation failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"egfr":  estimate,
		"unit":  "mL/min/1.73m²",
		"stage": band.Stage,
		"recommendations": echo.Map{
			"lifestyle": band.LifestyleAdvice,
			"diet":      band.FoodAdvice,
			"medical":   band.MedicalAdvice,
		},
	})
}
