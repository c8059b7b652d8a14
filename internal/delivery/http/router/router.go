// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mirage/config"
	"mirage/internal/delivery/http/middleware"
	"mirage/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	AuthHandler         *handler.AuthHandler
	ImageHandler        *handler.ImageHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg          *config.Config
	authHandler  *handler.AuthHandler
	imageHandler *handler.ImageHandler
	authMW       *middleware.AuthMiddleware
	requestIDMW  *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:          params.Config,
		authHandler:  params.AuthHandler,
		imageHandler: params.ImageHandler,
		authMW:       params.AuthMiddleware,
		requestIDMW:  params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMW.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Image routes require a valid bearer token
	imageGroup := e.Group("/images")
	imageGroup.Use(r.authMW.Authenticate)
	{
		imageGroup.POST("/upload", r.imageHandler.Upload)
		imageGroup.GET("", r.imageHandler.List)
	}

	// Optionally expose the staging directory for direct image access.
	if r.cfg.Upload != nil && r.cfg.Upload.ServePublic {
		e.Static("/uploads", r.cfg.Upload.Dir)
	}
}
