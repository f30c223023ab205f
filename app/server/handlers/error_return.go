package handlers

import (
	"github.com/labstack/echo/v4"
)

// er answers a failure as {"error": ...}; msg answers an acknowledgement as
// {"message": ...}. The field names are part of the public API.

func (a *App) er(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, echo.Map{"error": message})
}

func (a *App) msg(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, echo.Map{"message": message})
}
