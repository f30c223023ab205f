package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kidney-care-ai/app/server/models"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type adminInquiryRequest struct {
	Message  *string `json:"message"`
	Response *string `json:"response"`
}

func inquiryInfo(inquiry *models.Inquiry) echo.Map {
	return echo.Map{
		"id":         inquiry.ID,
		"user_id":    inquiry.UserID,
		"message":    inquiry.Message,
		"response":   inquiry.Response,
		"created_at": inquiry.CreatedAt,
	}
}

func (a *App) InquiryList(c echo.Context) error {
	rctx := c.Request().Context()

	var inquiries []models.Inquiry
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&inquiries).Error; err != nil {
		a.l.Error("failed to get inquiry list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve inquiries")
	}

	return c.JSON(http.StatusOK, lo.Map(inquiries, func(inquiry models.Inquiry, _ int) echo.Map {
		return inquiryInfo(&inquiry)
	}))
}

func (a *App) InquiryGet(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid inquiry id")
	}

	rctx := c.Request().Context()

	var inquiry models.Inquiry
	if err := a.db.WithContext(rctx).First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Inquiry not found")
		}
		a.l.Error("failed to get inquiry", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve inquiry")
	}

	return c.JSON(http.StatusOK, inquiryInfo(&inquiry))
}

func (a *App) InquiryUpdate(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid inquiry id")
	}

	rctx := c.Request().Context()

	var req adminInquiryRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	var inquiry models.Inquiry
	if err := a.db.WithContext(rctx).First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Inquiry not found")
		}
		a.l.Error("failed to get inquiry", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to update inquiry")
	}

	if req.Message != nil {
		inquiry.Message = *req.Message
	}
	if req.Response != nil {
		inquiry.Response = *req.Response
	}

	if err := a.db.WithContext(rctx).Save(&inquiry).Error; err != nil {
		a.l.Error("failed to update inquiry", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to update inquiry")
	}

	return a.msg(c, http.StatusOK, "Inquiry updated successfully")
}

func (a *App) InquiryDelete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid inquiry id")
	}

	rctx := c.Request().Context()

	var inquiry models.Inquiry
	if err := a.db.WithContext(rctx).First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Inquiry not found")
		}
		a.l.Error("failed to get inquiry", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to delete inquiry")
	}

	if err := a.db.WithContext(rctx).Delete(&inquiry).Error; err != nil {
		a.l.Error("failed to delete inquiry", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to delete inquiry")
	}

	return a.msg(c, http.StatusOK, "Inquiry deleted successfully")
}

type replyInquiryRequest struct {
	Response *string `json:"response"`
}

// ReplyInquiry stores the admin response and notifies the inquirer by email.
func (a *App) ReplyInquiry(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid inquiry id")
	}

	rctx := c.Request().Context()

	var req replyInquiryRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Response == nil || strings.TrimSpace(*req.Response) == "" {
		return a.er(c, http.StatusBadRequest, "Response content required")
	}

	var inquiry models.Inquiry
	if err := a.db.WithContext(rctx).First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Inquiry not found")
		}
		a.l.Error("failed to get inquiry", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to reply to inquiry")
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", inquiry.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Inquiring user not found")
		}
		a.l.Error("failed to get inquiring user", zap.Uint("id", inquiry.UserID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to reply to inquiry")
	}

	if err := a.db.WithContext(rctx).Model(&inquiry).Update("response", *req.Response).Error; err != nil {
		a.l.Error("failed to update inquiry response", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to reply to inquiry")
	}

	body := fmt.Sprintf("Dear %s,\n\n%s\n\nBest regards,\nKidney Care AI Team", user.Username, *req.Response)
	if err := a.mail.Send(user.Email, "Response to Your Inquiry", body); err != nil {
		a.l.Error("failed to send inquiry reply email", zap.String("to", user.Email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to send notification email")
	}

	return a.msg(c, http.StatusOK, "Reply sent successfully")
}
