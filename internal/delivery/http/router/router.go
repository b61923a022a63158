// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/router/handler"
	"campus/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LecturerHandler *handler.LecturerHandler
	LocationHandler *handler.LocationHandler
	GroupHandler    *handler.GroupHandler
	MessageHandler  *handler.MessageHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	lecturerHandler *handler.LecturerHandler
	locationHandler *handler.LocationHandler
	groupHandler    *handler.GroupHandler
	messageHandler  *handler.MessageHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		lecturerHandler: params.LecturerHandler,
		locationHandler: params.LocationHandler,
		groupHandler:    params.GroupHandler,
		messageHandler:  params.MessageHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public; every write except registration and login needs a lecturer session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.RequireAuth

	e.GET("/health", handler.HealthCheck)

	lecturerGroup := e.Group("/lecturer")
	{
		lecturerGroup.POST("", r.lecturerHandler.Register)
		lecturerGroup.POST("/login", r.lecturerHandler.Login)
		lecturerGroup.GET("/me", r.lecturerHandler.Me, r.authMiddleware.Authenticate)
	}

	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.locationHandler.List)
		locationGroup.POST("", auth(r.locationHandler.Create))
		locationGroup.GET("/:id", r.locationHandler.Get)
		locationGroup.GET("/:id/messages", r.messageHandler.List(entity.MessageTargetLocation))
		locationGroup.POST("/:id/messages", auth(r.messageHandler.Schedule(entity.MessageTargetLocation)))
	}

	groupGroup := e.Group("/groups")
	{
		groupGroup.GET("", r.groupHandler.List)
		groupGroup.POST("", auth(r.groupHandler.Create))
		groupGroup.GET("/:id", r.groupHandler.Get)
		groupGroup.GET("/:id/students", r.groupHandler.ListStudents)
		groupGroup.POST("/:id/students", auth(r.groupHandler.EnrollStudent))
		groupGroup.GET("/:id/messages", r.messageHandler.List(entity.MessageTargetGroup))
		groupGroup.POST("/:id/messages", auth(r.messageHandler.Schedule(entity.MessageTargetGroup)))
	}
}
