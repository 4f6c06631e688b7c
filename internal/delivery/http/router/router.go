// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"doorman/internal/delivery/http/middleware"
	"doorman/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler  *handler.AuthHandler
	PageHandler  *handler.PageHandler
	SessionGuard *middleware.SessionGuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler  *handler.AuthHandler
	pageHandler  *handler.PageHandler
	sessionGuard *middleware.SessionGuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:  params.AuthHandler,
		pageHandler:  params.PageHandler,
		sessionGuard: params.SessionGuard,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// The guard runs before any page logic. It scopes itself to the public
	// auth pages and the protected dashboard subtree.
	e.Use(r.sessionGuard.Process)

	// Public auth pages and form submissions
	e.GET("/login", r.pageHandler.LoginPage)
	e.POST("/login", r.authHandler.Login)
	e.GET("/register", r.pageHandler.RegisterPage)
	e.POST("/register", r.authHandler.Register)
	e.POST("/logout", r.authHandler.Logout)

	// Protected pages
	dashboardGroup := e.Group("/dashboard")
	{
		dashboardGroup.GET("", r.pageHandler.Dashboard)
		dashboardGroup.GET("/*", r.pageHandler.Dashboard)
	}
}
