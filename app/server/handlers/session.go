package handlers

import (
	"errors"
	"net/http"
	"time"

	"kidney-care-ai/app/server/constants"
	"kidney-care-ai/app/server/sessions"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// currentSession resolves the request's session cookie. Returns the session
// and its token, or (nil, "") when the request carries no valid session.
func (a *App) currentSession(c echo.Context) (*sessions.Session, string) {
	cookie, err := c.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, ""
	}

	sess, err := a.sessions.Get(c.Request().Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, sessions.ErrNotFound) {
			a.l.Error("failed to load session", zap.Error(err))
		}
		return nil, ""
	}

	return sess, cookie.Value
}

func (a *App) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(constants.SessionDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *App) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
