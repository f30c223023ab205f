package handlers

import (
	"net/http"
	"strings"

	"kidney-care-ai/app/server/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type inquiryRequest struct {
	Message string `json:"message"`
}

// SubmitInquiry files a question from a client account.
func (a *App) SubmitInquiry(c echo.Context) error {
	sess, _ := a.currentSession(c)
	if sess == nil || sess.Role != models.RoleClient {
		return a.er(c, http.StatusUnauthorized, "Authentication required")
	}

	rctx := c.Request().Context()

	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return a.er(c, http.StatusBadRequest, "Message content required")
	}

	inquiry := models.Inquiry{
		UserID:  sess.UserID,
		Message: message,
	}
	if err := a.db.WithContext(rctx).Create(&inquiry).Error; err != nil {
		a.l.Error("failed to create inquiry", zap.Uint("user_id", sess.UserID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to submit inquiry")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Inquiry submitted successfully",
		"inquiry_id": inquiry.ID,
	})
}
