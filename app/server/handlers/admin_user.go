package handlers

import (
	"errors"
	"net/http"
	"strings"

	"kidney-care-ai/app/server/models"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type adminUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	UserType *string `json:"user_type"`
}

func userInfo(user *models.User) echo.Map {
	return echo.Map{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"user_type": user.Role,
	}
}

func (a *App) UserList(c echo.Context) error {
	rctx := c.Request().Context()

	var users []models.User
	if err := a.db.WithContext(rctx).Order("id ASC").Find(&users).Error; err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve users")
	}

	return c.JSON(http.StatusOK, lo.Map(users, func(user models.User, _ int) echo.Map {
		return userInfo(&user)
	}))
}

func (a *App) UserCreate(c echo.Context) error {
	rctx := c.Request().Context()

	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Username == nil || req.Email == nil || req.Password == nil {
		return a.er(c, http.StatusBadRequest, "Missing required fields: username, email, password")
	}

	role := models.RoleClient
	if req.UserType != nil && strings.ToLower(*req.UserType) == models.RoleAdmin {
		role = models.RoleAdmin
	}

	passwordHash, err := argon2id.CreateHash(*req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to create user")
	}

	user := models.User{
		Username: strings.TrimSpace(*req.Username),
		Email:    strings.ToLower(strings.TrimSpace(*req.Email)),
		Role:     role,
		Password: passwordHash,
	}
	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return a.er(c, http.StatusConflict, "Username or email already exists")
		}
		a.l.Error("failed to create user", zap.String("username", user.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to create user")
	}

	return a.msg(c, http.StatusCreated, "User created successfully")
}

func (a *App) UserGet(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid user id")
	}

	rctx := c.Request().Context()

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to retrieve user")
	}

	return c.JSON(http.StatusOK, userInfo(&user))
}

func (a *App) UserUpdate(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid user id")
	}

	rctx := c.Request().Context()

	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to update user")
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.UserType != nil {
		if role := strings.ToLower(*req.UserType); role == models.RoleAdmin || role == models.RoleClient {
			user.Role = role
		}
	}

	if err := a.db.WithContext(rctx).Save(&user).Error; err != nil {
		if isDuplicate(err) {
			return a.er(c, http.StatusConflict, "Username or email already exists")
		}
		a.l.Error("failed to update user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to update user")
	}

	return a.msg(c, http.StatusOK, "User updated successfully")
}

func (a *App) UserDelete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid user id")
	}

	rctx := c.Request().Context()

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "User not found")
		}
		a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to delete user")
	}

	if err := a.db.WithContext(rctx).Delete(&user).Error; err != nil {
		a.l.Error("failed to delete user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Failed to delete user")
	}

	return a.msg(c, http.StatusOK, "User deleted successfully")
}
