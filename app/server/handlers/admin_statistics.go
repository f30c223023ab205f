package handlers

import (
	"net/http"

	"kidney-care-ai/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Statistics aggregates detection outcomes across all users.
func (a *App) Statistics(c echo.Context) error {
	rctx := c.Request().Context()

	var ckdCount, nonCKDCount int64
	if err := a.db.WithContext(rctx).Model(&models.DetectionResult{}).
		Where("prediction = ?", 1).Count(&ckdCount).Error; err != nil {
		a.l.Error("failed to count ckd detections", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve statistics")
	}
	if err := a.db.WithContext(rctx).Model(&models.DetectionResult{}).
		Where("prediction = ?", 0).Count(&nonCKDCount).Error; err != nil {
		a.l.Error("failed to count non-ckd detections", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve statistics")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"ckd_cases":     ckdCount,
		"non_ckd_cases": nonCKDCount,
	})
}
