package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Goldlee001/CoeCarbon/internal/handlers"
	"github.com/Goldlee001/CoeCarbon/internal/i18n"
	"github.com/Goldlee001/CoeCarbon/internal/middleware"
	"github.com/Goldlee001/CoeCarbon/internal/services"
	"github.com/Goldlee001/CoeCarbon/internal/session"
)

func SetupRoutes(
	r *gin.Engine,
	sessions *session.Manager,
	users services.UserService,
	bundle *i18n.Bundle,
	authHandler *handlers.AuthHandler,
	pagesHandler *handlers.PagesHandler,
	adminHandler *handlers.AdminHandler,
	log *zap.Logger,
) *gin.Engine {

	r.Use(sessions.Middleware())
	r.Use(middleware.LocaleResolver(bundle))

	// ---- public
	r.GET("/", authHandler.Root)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// static informational plan pages
	r.GET("/invest1", pagesHandler.InvestPlan("invest1.html"))
	r.GET("/invest2", pagesHandler.InvestPlan("invest2.html"))
	r.GET("/invest3", pagesHandler.InvestPlan("invest3.html"))
	r.GET("/invest4", pagesHandler.InvestPlan("invest4.html"))
	r.GET("/invest5", pagesHandler.InvestPlan("invest5.html"))

	// ---- protected
	authed := r.Group("/", middleware.RequireAuth(sessions, log))
	{
		authed.GET("/home", pagesHandler.Home)
		authed.GET("/invest", pagesHandler.Invest)
		authed.GET("/alliance", pagesHandler.Alliance)
		authed.GET("/profile", pagesHandler.Profile)
		authed.POST("/profile/password", authHandler.ChangePassword)
	}

	// ---- admin
	admin := r.Group("/admin", middleware.RequireAdmin(sessions, users, log))
	{
		admin.GET("", adminHandler.Dashboard)
	}

	r.NoRoute(pagesHandler.NotFound)

	return r
}
