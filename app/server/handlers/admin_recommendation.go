package handlers

import (
	"errors"
	"net/http"
	"strings"

	"kidney-care-ai/app/server/models"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recommendationRequest struct {
	Stage           *string  `json:"stage"`
	EGFRRangeLow    *float64 `json:"egfr_range_low"`
	EGFRRangeHigh   *float64 `json:"egfr_range_high"`
	LifestyleAdvice *string  `json:"lifestyle_advice"`
	FoodAdvice      *string  `json:"food_advice"`
	MedicalAdvice   *string  `json:"medical_advice"`
}

func recommendationInfo(rec *models.Recommendation) echo.Map {
	return echo.Map{
		"id":               rec.ID,
		"stage":            rec.Stage,
		"egfr_range_low":   rec.EGFRRangeLow,
		"egfr_range_high":  rec.EGFRRangeHigh,
		"lifestyle_advice": rec.LifestyleAdvice,
		"food_advice":      rec.FoodAdvice,
		"medical_advice":   rec.MedicalAdvice,
	}
}

func (a *App) RecommendationList(c echo.Context) error {
	rctx := c.Request().Context()

	var recs []models.Recommendation
	if err := a.db.WithContext(rctx).Order("egfr_range_low ASC").Find(&recs).Error; err != nil {
		a.l.Error("failed to get recommendation list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve recommendations")
	}

	return c.JSON(http.StatusOK, lo.Map(recs, func(rec models.Recommendation, _ int) echo.Map {
		return recommendationInfo(&rec)
	}))
}

func (a *App) RecommendationCreate(c echo.Context) error {
	rctx := c.Request().Context()

	var req recommendationRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Stage == nil || strings.TrimSpace(*req.Stage) == "" ||
		req.EGFRRangeLow == nil || req.EGFRRangeHigh == nil ||
		req.LifestyleAdvice == nil || req.FoodAdvice == nil || req.MedicalAdvice == nil {
		return a.er(c, http.StatusBadRequest, "Missing required recommendation fields")
	}
	if *req.EGFRRangeLow > *req.EGFRRangeHigh {
		return a.er(c, http.StatusBadRequest, "egfr_range_low must not exceed egfr_range_high")
	}

	rec := models.Recommendation{
		Stage:           *req.Stage,
		EGFRRangeLow:    *req.EGFRRangeLow,
		EGFRRangeHigh:   *req.EGFRRangeHigh,
		LifestyleAdvice: *req.LifestyleAdvice,
		FoodAdvice:      *req.FoodAdvice,
		MedicalAdvice:   *req.MedicalAdvice,
	}
	if err := a.db.WithContext(rctx).Create(&rec).Error; err != nil {
		a.l.Error("failed to create recommendation", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to add recommendation")
	}

	return a.msg(c, http.StatusCreated, "Recommendation added successfully")
}

func (a *App) RecommendationGet(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid recommendation id")
	}

	rctx := c.Request().Context()

	var rec models.Recommendation
	if err := a.db.WithContext(rctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Recommendation not found")
		}
		a.l.Error("failed to get recommendation", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve recommendation")
	}

	return c.JSON(http.StatusOK, recommendationInfo(&rec))
}

func (a *App) RecommendationUpdate(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid recommendation id")
	}

	rctx := c.Request().Context()

	var req recommendationRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	var rec models.Recommendation
	if err := a.db.WithContext(rctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Recommendation not found")
		}
		a.l.Error("failed to get recommendation", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to update recommendation")
	}

	if req.Stage != nil {
		rec.Stage = *req.Stage
	}
	if req.EGFRRangeLow != nil {
		rec.EGFRRangeLow = *req.EGFRRangeLow
	}
	if req.EGFRRangeHigh != nil {
		rec.EGFRRangeHigh = *req.EGFRRangeHigh
	}
	if req.LifestyleAdvice != nil {
		rec.LifestyleAdvice = *req.LifestyleAdvice
	}
	if req.FoodAdvice != nil {
		rec.FoodAdvice = *req.FoodAdvice
	}
	if req.MedicalAdvice != nil {
		rec.MedicalAdvice = *req.MedicalAdvice
	}
	if rec.EGFRRangeLow > rec.EGFRRangeHigh {
		return a.er(c, http.StatusBadRequest, "egfr_range_low must not exceed egfr_range_high")
	}

	if err := a.db.WithContext(rctx).Save(&rec).Error; err != nil {
		a.l.Error("failed to update recommendation", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to update recommendation")
	}

	return a.msg(c, http.StatusOK, "Recommendation updated successfully")
}

func (a *App) RecommendationDelete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid recommendation id")
	}

	rctx := c.Request().Context()

	var rec models.Recommendation
	if err := a.db.WithContext(rctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Recommendation not found")
		}
		a.l.Error("failed to get recommendation", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to delete recommendation")
	}

	if err := a.db.WithContext(rctx).Delete(&rec).Error; err != nil {
		a.l.Error("failed to delete recommendation", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to delete recommendation")
	}

	return a.msg(c, http.StatusOK, "Recommendation deleted successfully")
}
