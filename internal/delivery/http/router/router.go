// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fixtrack/internal/delivery/http/middleware"
	"fixtrack/internal/delivery/http/router/handler"
	"fixtrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	AuthHandler       *handler.AuthHandler
	DeviceHandler     *handler.DeviceHandler
	RepairHandler     *handler.RepairHandler
	PartHandler       *handler.PartHandler
	PaymentHandler    *handler.PaymentHandler
	PushDeviceHandler *handler.PushDeviceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", p.HealthHandler.Check)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.GET("/me", p.AuthHandler.Me, p.AuthMiddleware.Authenticate)
		// Only admins may create staff accounts.
		authGroup.POST("/register", p.AuthHandler.RegisterStaff,
			p.AuthMiddleware.Authenticate, p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Everything below requires a logged-in staff member. Fine-grained role
	// checks for transitions live in the use case layer, where they are
	// evaluated against fresh device state.
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(p.AuthMiddleware.Authenticate)
	{
		deviceGroup.POST("", p.DeviceHandler.RegisterDevice)
		deviceGroup.GET("", p.DeviceHandler.ListDevices)
		deviceGroup.GET("/:id", p.DeviceHandler.GetDevice)
		deviceGroup.PATCH("/:id", p.DeviceHandler.UpdateDevice)
		deviceGroup.PUT("/:id/technician", p.DeviceHandler.AssignTechnician,
			p.AuthMiddleware.RequireRole(entity.RoleAdmin))
		deviceGroup.POST("/:id/remarks", p.DeviceHandler.AppendRemark)
		deviceGroup.GET("/:id/remarks", p.DeviceHandler.ListRemarks)
		deviceGroup.GET("/:id/tag.png", p.DeviceHandler.GenerateDeviceTag)

		// Status transitions
		deviceGroup.GET("/:id/transitions", p.RepairHandler.AvailableTransitions)
		deviceGroup.POST("/:id/transitions", p.RepairHandler.ExecuteTransition)

		// Spare parts, scoped to a device
		deviceGroup.GET("/:id/parts", p.PartHandler.ListParts)
		deviceGroup.POST("/:id/parts", p.PartHandler.RequestParts)
		deviceGroup.POST("/:id/parts/receive-all", p.PartHandler.ReceiveAllPending)

		// Payments, read-only
		deviceGroup.GET("/:id/payments", p.PaymentHandler.ListPayments)
		deviceGroup.GET("/:id/payments/summary", p.PaymentHandler.GetPaymentAggregate)
	}

	partGroup := e.Group("/parts")
	partGroup.Use(p.AuthMiddleware.Authenticate)
	{
		partGroup.PATCH("/:id/status", p.PartHandler.UpdatePartStatus)
		partGroup.DELETE("/:id", p.PartHandler.RemovePart,
			p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	}

	pushGroup := e.Group("/push-devices")
	pushGroup.Use(p.AuthMiddleware.Authenticate)
	{
		pushGroup.POST("", p.PushDeviceHandler.RegisterDevice)
		pushGroup.GET("", p.PushDeviceHandler.GetDevices)
		pushGroup.PATCH("/:id/token", p.PushDeviceHandler.UpdatePushToken)
		pushGroup.DELETE("/:id", p.PushDeviceHandler.DeactivateDevice)
	}
}
