package handlers

import (
	"net/http"

	"kidney-care-ai/app/server/models"

	"github.com/labstack/echo/v4"
)

func (a *App) RegisterRoutes(e *echo.Echo) {
	e.GET("/", a.Home)

	e.POST("/register", a.Register)
	e.POST("/login", a.Login)
	e.POST("/logout", a.Logout)
	e.GET("/check", a.Check)

	e.POST("/predict", a.Predict)
	e.POST("/calculate-egfr", a.CalculateEGFR)
	e.POST("/submit-inquiry", a.SubmitInquiry)
	e.GET("/view-general-info", a.ViewGeneralInfo)

	g := e.Group("/admin", a.adminGate)
	g.GET("/users", a.UserList)
	g.POST("/users", a.UserCreate)
	g.GET("/users/:id", a.UserGet)
	g.PUT("/users/:id", a.UserUpdate)
	g.DELETE("/users/:id", a.UserDelete)
	g.GET("/inquiries", a.InquiryList)
	g.GET("/inquiries/:id", a.InquiryGet)
	g.PUT("/inquiries/:id", a.InquiryUpdate)
	g.DELETE("/inquiries/:id", a.InquiryDelete)
	g.POST("/reply-inquiry/:id", a.ReplyInquiry)
	g.GET("/general-info", a.GeneralInfoList)
	g.POST("/general-info", a.GeneralInfoCreate)
	g.GET("/general-info/:id", a.GeneralInfoGet)
	g.PUT("/general-info/:id", a.GeneralInfoUpdate)
	g.DELETE("/general-info/:id", a.GeneralInfoDelete)
	g.GET("/recommendations", a.RecommendationList)
	g.POST("/recommendations", a.RecommendationCreate)
	g.GET("/recommendations/:id", a.RecommendationGet)
	g.PUT("/recommendations/:id", a.RecommendationUpdate)
	g.DELETE("/recommendations/:id", a.RecommendationDelete)
	g.GET("/statistics", a.Statistics)
}

// adminGate rejects every /admin request whose session role is not admin.
func (a *App) adminGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, _ := a.currentSession(c)
		if sess == nil || sess.Role != models.RoleAdmin {
			return a.msg(c, http.StatusForbidden, "Unauthorized")
		}
		return next(c)
	}
}
