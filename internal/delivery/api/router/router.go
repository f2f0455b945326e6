// Package router registers the routes of the API server.
package router

import (
	"hivewatch/internal/delivery/api/middleware"
	"hivewatch/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	GPSAlertHandler    *handler.GPSAlertHandler
	SensorLabelHandler *handler.SensorLabelHandler
	WebhookHandler     *handler.WebhookHandler
	AuthMiddleware     *middleware.AuthMiddleware
	WebhookMiddleware  *middleware.WebhookMiddleware
}

type router struct {
	gpsAlertHandler    *handler.GPSAlertHandler
	sensorLabelHandler *handler.SensorLabelHandler
	webhookHandler     *handler.WebhookHandler
	authMiddleware     *middleware.AuthMiddleware
	webhookMiddleware  *middleware.WebhookMiddleware
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		gpsAlertHandler:    params.GPSAlertHandler,
		sensorLabelHandler: params.SensorLabelHandler,
		webhookHandler:     params.WebhookHandler,
		authMiddleware:     params.AuthMiddleware,
		webhookMiddleware:  params.WebhookMiddleware,
	}
}

// RegisterRoutes sets up all the API routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	sensorGroup := e.Group("/capteurs/:id")
	sensorGroup.Use(r.authMiddleware.Authenticate)
	{
		sensorGroup.POST("/gps-alert/activate", r.gpsAlertHandler.Activate)
		sensorGroup.POST("/gps-alert/check", r.gpsAlertHandler.Check)
		sensorGroup.POST("/gps-alert/deactivate", r.gpsAlertHandler.Deactivate)
		sensorGroup.GET("/gps-alert/status", r.gpsAlertHandler.Status)
		sensorGroup.POST("/gps-alert/clear", r.gpsAlertHandler.Clear)
		sensorGroup.GET("/label.png", r.sensorLabelHandler.Label)
	}

	apiaryGroup := e.Group("/ruchers/:id")
	apiaryGroup.Use(r.authMiddleware.Authenticate)
	{
		apiaryGroup.GET("/gps-alert/status", r.gpsAlertHandler.ApiaryStatus)
	}

	webhookGroup := e.Group("/webhooks")
	webhookGroup.Use(r.webhookMiddleware.Verify)
	{
		webhookGroup.POST("/intervention-created", r.webhookHandler.InterventionCreated)
		webhookGroup.POST("/daily-notifications", r.webhookHandler.DailyNotifications)
	}
}
