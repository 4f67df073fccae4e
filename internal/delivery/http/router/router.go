// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"echofleet/internal/delivery/http/middleware"
	"echofleet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	InstanceHandler   *handler.InstanceHandler
	DeviceHandler     *handler.DeviceHandler
	ActivationHandler *handler.ActivationHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	instanceHandler   *handler.InstanceHandler
	deviceHandler     *handler.DeviceHandler
	activationHandler *handler.ActivationHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		instanceHandler:   params.InstanceHandler,
		deviceHandler:     params.DeviceHandler,
		activationHandler: params.ActivationHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Device-facing activation routes. Devices have no user token, so
	// these stay unauthenticated.
	api.GET("/activation", r.activationHandler.Request)
	api.POST("/activation/verify", r.activationHandler.Verify)
	api.GET("/activation/qrcode", r.activationHandler.QRCode)
	api.POST("/devices/:id/report", r.deviceHandler.Report)

	// Console routes that require authentication
	console := api.Group("")
	console.Use(r.authMiddleware.Authenticate)
	{
		console.POST("/activation/confirm", r.activationHandler.Confirm)

		console.POST("/deploy", r.instanceHandler.Deploy)
		console.GET("/containers", r.instanceHandler.List)
		console.GET("/containers/:id", r.instanceHandler.Get)
		console.DELETE("/containers/:id", r.instanceHandler.Delete)
		console.POST("/containers/:id/start", r.instanceHandler.Start)
		console.POST("/containers/:id/stop", r.instanceHandler.Stop)
		console.GET("/containers/:id/logs", r.instanceHandler.Logs)
		console.GET("/containers/:id/health", r.instanceHandler.Health)

		console.GET("/devices", r.deviceHandler.List)
		console.POST("/devices", r.deviceHandler.Register)
		console.GET("/devices/:id", r.deviceHandler.Get)
		console.DELETE("/devices/:id", r.deviceHandler.Delete)
		console.POST("/devices/:id/bind", r.deviceHandler.Bind)
		console.POST("/devices/:id/unbind", r.deviceHandler.Unbind)
	}
}
