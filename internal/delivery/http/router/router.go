// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"subhub/internal/delivery/http/middleware"
	"subhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CustomerHandler     *handler.CustomerHandler
	PlatformHandler     *handler.PlatformHandler
	SubscriptionHandler *handler.SubscriptionHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	customerHandler     *handler.CustomerHandler
	platformHandler     *handler.PlatformHandler
	subscriptionHandler *handler.SubscriptionHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		customerHandler:     params.CustomerHandler,
		platformHandler:     params.PlatformHandler,
		subscriptionHandler: params.SubscriptionHandler,
		dashboardHandler:    params.DashboardHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// API routes that require authentication
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/me", r.userHandler.GetProfile)
		apiGroup.PUT("/me/preferences", r.userHandler.UpdatePreferences)

		apiGroup.GET("/customers", r.customerHandler.List)
		apiGroup.POST("/customers", r.customerHandler.Create)
		apiGroup.GET("/customers/:id", r.customerHandler.Get)
		apiGroup.PUT("/customers/:id", r.customerHandler.Update)
		apiGroup.DELETE("/customers/:id", r.customerHandler.Delete)

		apiGroup.GET("/platforms", r.platformHandler.List)
		apiGroup.POST("/platforms", r.platformHandler.Create)
		apiGroup.GET("/platforms/:id", r.platformHandler.Get)
		apiGroup.PUT("/platforms/:id", r.platformHandler.Update)
		apiGroup.DELETE("/platforms/:id", r.platformHandler.Delete)

		apiGroup.GET("/subscriptions", r.subscriptionHandler.List)
		apiGroup.POST("/subscriptions", r.subscriptionHandler.Create)
		apiGroup.GET("/subscriptions/:id", r.subscriptionHandler.Get)
		apiGroup.PUT("/subscriptions/:id", r.subscriptionHandler.Update)
		apiGroup.DELETE("/subscriptions/:id", r.subscriptionHandler.Delete)

		apiGroup.GET("/dashboard/stats", r.dashboardHandler.GetStats)
	}
}
