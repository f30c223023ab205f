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

type generalInfoRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func generalInfoItem(info *models.GeneralInfo) echo.Map {
	return echo.Map{
		"id":      info.ID,
		"title":   info.Title,
		"content": info.Content,
	}
}

func (a *App) GeneralInfoList(c echo.Context) error {
	rctx := c.Request().Context()

	var items []models.GeneralInfo
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&items).Error; err != nil {
		a.l.Error("failed to get general info list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve information")
	}

	return c.JSON(http.StatusOK, lo.Map(items, func(item models.GeneralInfo, _ int) echo.Map {
		return generalInfoItem(&item)
	}))
}

func (a *App) GeneralInfoCreate(c echo.Context) error {
	rctx := c.Request().Context()

	var req generalInfoRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" ||
		req.Content == nil || strings.TrimSpace(*req.Content) == "" {
		return a.er(c, http.StatusBadRequest, "Title and content required")
	}

	info := models.GeneralInfo{
		Title:   *req.Title,
		Content: *req.Content,
	}
	if err := a.db.WithContext(rctx).Create(&info).Error; err != nil {
		a.l.Error("failed to create general info", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to add information")
	}

	return a.msg(c, http.StatusCreated, "Info added successfully")
}

func (a *App) GeneralInfoGet(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid info id")
	}

	rctx := c.Request().Context()

	var info models.GeneralInfo
	if err := a.db.WithContext(rctx).First(&info, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Info not found")
		}
		a.l.Error("failed to get general info", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve information")
	}

	return c.JSON(http.StatusOK, generalInfoItem(&info))
}

func (a *App) GeneralInfoUpdate(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid info id")
	}

	rctx := c.Request().Context()

	var req generalInfoRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	var info models.GeneralInfo
	if err := a.db.WithContext(rctx).First(&info, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Info not found")
		}
		a.l.Error("failed to get general info", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to update information")
	}

	if req.Title != nil {
		info.Title = *req.Title
	}
	if req.Content != nil {
		info.Content = *req.Content
	}

	if err := a.db.WithContext(rctx).Save(&info).Error; err != nil {
		a.l.Error("failed to update general info", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to update information")
	}

	return a.msg(c, http.StatusOK, "Info updated successfully")
}

func (a *App) GeneralInfoDelete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid info id")
	}

	rctx := c.Request().Context()

	var info models.GeneralInfo
	if err := a.db.WithContext(rctx).First(&info, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Info not found")
		}
		a.l.Error("failed to get general info", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to delete information")
	}

	if err := a.db.WithContext(rctx).Delete(&info).Error; err != nil {
		a.l.Error("failed to delete general info", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to delete information")
	}

	return a.msg(c, http.StatusOK, "Info deleted successfully")
}
