package handlers

import (
	"fmt"
	"net/http"

	"kidney-care-ai/app/server/classifier"
	"kidney-care-ai/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Predict runs the CKD classifier over the 13 clinical features and records
// the outcome for the authenticated user.
func (a *App) Predict(c echo.Context) error {
	sess, _ := a.currentSession(c)
	if sess == nil {
		return a.er(c, http.StatusUnauthorized, "Authentication required")
	}

	rctx := c.Request().Context()

	var req map[string]any
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	var features [classifier.NumFeatures]float64
	for i, name := range classifier.FeatureOrder {
		raw, ok := req[name]
		if !ok {
			return a.er(c, http.StatusBadRequest, fmt.Sprintf("Missing required field: '%s'", name))
		}
		value, err := toFloat(raw)
		if err != nil {
			return a.er(c, http.StatusBadRequest, fmt.Sprintf("Invalid numeric value for field '%s'", name))
		}
		features[i] = value
	}

	prediction := a.model.Predict(features)

	result := models.DetectionResult{
		UserID:     sess.UserID,
		Prediction: prediction,
	}
	if err := a.db.WithContext(rctx).Create(&result).Error; err != nil {
		a.l.Error("failed to save detection result", zap.Uint("user_id", sess.UserID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to save detection result")
	}

	message := "No CKD Detected"
	if prediction == 1 {
		message = "CKD Detected"
	}

	return c.JSON(http.StatusOK, echo.Map{
		"prediction": prediction,
		"message":    message,
	})
}
