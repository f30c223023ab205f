package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kidney-care-ai/app/server/models"
	"kidney-care-ai/app/server/sessions"
	"kidney-care-ai/app/server/utils"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

func (a *App) Register(c echo.Context) error {
	rctx := c.Request().Context()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	userType := strings.ToLower(strings.TrimSpace(req.UserType))

	if username == "" || email == "" || password == "" {
		return a.er(c, http.StatusBadRequest, "Missing required fields: username, email, password")
	}

	// creating an admin requires an admin session
	if userType == models.RoleAdmin {
		sess, _ := a.currentSession(c)
		if sess == nil || sess.Role != models.RoleAdmin {
			return a.er(c, http.StatusForbidden, "Admin privileges required to create admin users")
		}
	}
	if userType != models.RoleAdmin && userType != models.RoleClient {
		userType = models.RoleClient
	}

	if !utils.ValidEmail(email) {
		return a.er(c, http.StatusBadRequest, "Invalid email format")
	}

	if unmet := utils.ValidatePassword(password); len(unmet) > 0 {
		return a.er(c, http.StatusBadRequest, "Password requirements: "+strings.Join(unmet, ", "))
	}

	var existing models.User
	if err := a.db.WithContext(rctx).First(&existing, "username = ? OR email = ?", username, email).Error; err == nil {
		return a.er(c, http.StatusConflict, "Username or email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		a.l.Error("failed to check existing user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Registration failed")
	}

	passwordHash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Registration failed")
	}

	user := models.User{
		Username: username,
		Email:    email,
		Role:     userType,
		Password: passwordHash,
	}
	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if isDuplicate(err) {
			// lost the race against a concurrent registration
			return a.er(c, http.StatusConflict, "Username or email already exists")
		}
		a.l.Error("failed to create user", zap.String("username", username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Registration failed")
	}

	return a.msg(c, http.StatusCreated, fmt.Sprintf("User %s registered successfully", username))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *App) Login(c echo.Context) error {
	rctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return a.er(c, http.StatusBadRequest, "Username and password required")
	}

	// the same answer for unknown users and wrong passwords
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusUnauthorized, "Invalid username or password")
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Login failed")
	}

	if match, _, err := argon2id.CheckHash(password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Login failed")
	} else if !match {
		return a.er(c, http.StatusUnauthorized, "Invalid username or password")
	}

	// regenerate the session identity on every successful login
	if _, oldToken := a.currentSession(c); oldToken != "" {
		if err := a.sessions.Destroy(rctx, oldToken); err != nil {
			a.l.Error("failed to destroy previous session", zap.Error(err))
		}
	}

	token, err := a.sessions.Create(rctx, &sessions.Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		a.l.Error("failed to create session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Login failed")
	}
	a.setSessionCookie(c, token)

	return c.JSON(http.StatusOK, echo.Map{
		"message":   fmt.Sprintf("Welcome back %s", user.Username),
		"user_type": user.Role,
		"email":     user.Email,
	})
}

func (a *App) Logout(c echo.Context) error {
	if _, token := a.currentSession(c); token != "" {
		if err := a.sessions.Destroy(c.Request().Context(), token); err != nil {
			a.l.Error("failed to destroy session", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "Logout failed")
		}
	}
	a.clearSessionCookie(c)

	c.Response().Header().Set("Cache-Control", "no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")

	return a.msg(c, http.StatusOK, "Logged out successfully")
}

// Check returns the current admin identity, or 401 for anyone else.
func (a *App) Check(c echo.Context) error {
	sess, _ := a.currentSession(c)
	if sess == nil || sess.Role != models.RoleAdmin {
		return a.er(c, http.StatusUnauthorized, "Unauthorized")
	}

	rctx := c.Request().Context()

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", sess.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// the account behind the session is gone
			return a.er(c, http.StatusUnauthorized, "Unauthorized")
		}
		a.l.Error("failed to find user", zap.Uint("id", sess.UserID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Check failed")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"user_type": user.Role,
	})
}
