// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"railmadad/internal/delivery/api/middleware"
	"railmadad/internal/delivery/api/router/handler"
	"railmadad/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/oauth/google", r.authHandler.GoogleSignIn)
		authGroup.POST("/mfa/resolve", r.authHandler.ResolveMFA)
		authGroup.POST("/password-reset", r.authHandler.PasswordReset)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.GET("/guard", r.authHandler.Guard)
		authGroup.GET("/events", r.authHandler.Events)
	}

	phoneGroup := authGroup.Group("/phone")
	{
		phoneGroup.POST("/otp", r.authHandler.SendPhoneOTP)
		phoneGroup.POST("/verify", r.authHandler.VerifyPhoneOTP)
	}

	// Admin routes require an admin snapshot
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.sessionMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/session", r.authHandler.ProtectedSession)
	}

	passengerGroup := e.Group("/passenger")
	passengerGroup.Use(r.sessionMiddleware.RequireRole(entity.RolePassenger))
	{
		passengerGroup.GET("/session", r.authHandler.ProtectedSession)
	}
}
