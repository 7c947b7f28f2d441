// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	CardHandler         *handler.CardHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	cardHandler         *handler.CardHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		profileHandler:      params.ProfileHandler,
		cardHandler:         params.CardHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Anonymous auth routes share a per-client rate limit
	authGroup := e.Group("/auth")
	authGroup.Use(r.rateLimitMiddleware.Limit)
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/verify", r.authHandler.Verify)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/view/profile/me", r.profileHandler.GetMyProfile)
		userGroup.PATCH("/update/profile", r.profileHandler.UpdateProfile)

		userGroup.POST("/add/card", r.cardHandler.AddCard)
		userGroup.GET("/view/card", r.cardHandler.ListCards)
		userGroup.PATCH("/update/card", r.cardHandler.UpdateCard)
		userGroup.DELETE("/remove/card", r.cardHandler.RemoveCard)
		userGroup.PATCH("/default/card", r.cardHandler.MakeDefault)
	}
}
