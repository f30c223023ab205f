package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Kidney Care AI - CKD Detection and Management System",
		"version": "1.0",
	})
}
