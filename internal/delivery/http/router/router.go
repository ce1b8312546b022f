// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"garage/config"
	"garage/internal/delivery/http/middleware"
	"garage/internal/delivery/http/router/handler"
	"garage/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	AuthHandler         *handler.AuthHandler
	PreferenceHandler   *handler.PreferenceHandler
	WorkorderHandler    *handler.WorkorderHandler
	NotificationHandler *handler.NotificationHandler
	TicketHandler       *handler.TicketHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	authHandler         *handler.AuthHandler
	preferenceHandler   *handler.PreferenceHandler
	workorderHandler    *handler.WorkorderHandler
	notificationHandler *handler.NotificationHandler
	ticketHandler       *handler.TicketHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		authHandler:         params.AuthHandler,
		preferenceHandler:   params.PreferenceHandler,
		workorderHandler:    params.WorkorderHandler,
		notificationHandler: params.NotificationHandler,
		ticketHandler:       params.TicketHandler,
		testHandler:         params.TestHandler,
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
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Ticket routes that require authentication
	ticketGroup := e.Group("/tickets")
	ticketGroup.Use(r.authMiddleware.Authenticate)
	{
		ticketGroup.PUT("/:id/preferences", r.preferenceHandler.SavePreferences)
		ticketGroup.POST("/:id/notifications/test", r.notificationHandler.SendTest)
		ticketGroup.GET("/:id/pickup-pass", r.ticketHandler.PickupPass)
	}

	// Workorder routes; the shop staff role gate lives in the use case so the
	// endpoint can return the error envelope instead of the middleware's.
	workorderGroup := e.Group("/workorders")
	workorderGroup.Use(r.authMiddleware.Authenticate)
	{
		workorderGroup.POST("", r.workorderHandler.Dispatch)
	}

	// Internal routes drive the scheduler passes by hand. Admin only.
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.authMiddleware.Authenticate)
	internalGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		internalGroup.POST("/notifications/dispatch", r.notificationHandler.DispatchDue)
		internalGroup.POST("/reschedules/sweep", r.notificationHandler.SweepMissed)
	}

	// Test routes for middleware validation, enabled per environment.
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
