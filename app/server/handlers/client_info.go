package handlers

import (
	"net/http"

	"kidney-care-ai/app/server/models"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ViewGeneralInfo lists the published CKD information articles for clients.
func (a *App) ViewGeneralInfo(c echo.Context) error {
	sess, _ := a.currentSession(c)
	if sess == nil || sess.Role != models.RoleClient {
		return a.er(c, http.StatusUnauthorized, "Authentication required")
	}

	rctx := c.Request().Context()

	var items []models.GeneralInfo
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&items).Error; err != nil {
		a.l.Error("failed to get general info list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve information")
	}

	return c.JSON(http.StatusOK, lo.Map(items, func(item models.GeneralInfo, _ int) echo.Map {
		return echo.Map{
			"id":      item.ID,
			"title":   item.Title,
			"content": item.Content,
		}
	}))
}
