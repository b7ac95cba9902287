// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/config"
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.GET("/users", r.accountHandler.List)
	e.GET("/login", r.accountHandler.Login)

	userGroup := e.Group("/user")
	{
		userGroup.POST("/new", r.accountHandler.Register)
		userGroup.GET("/:id", r.accountHandler.Get)
	}

	// Status transitions and deletion can be gated behind bearer-token
	// authentication via auth.protectMutations.
	var guards []echo.MiddlewareFunc
	if r.cfg.Auth != nil && r.cfg.Auth.ProtectMutations {
		guards = append(guards, r.authMiddleware.Authenticate)
	}

	userGroup.PUT("/promote/:id", r.accountHandler.Promote, guards...)
	userGroup.PUT("/demote/:id", r.accountHandler.Demote, guards...)
	userGroup.PUT("/activate/:id", r.accountHandler.Activate, guards...)
	userGroup.PUT("/deactivate/:id", r.accountHandler.Deactivate, guards...)
	userGroup.DELETE("/delete/:id", r.accountHandler.Delete, guards...)
}
