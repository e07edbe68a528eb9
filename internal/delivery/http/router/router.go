// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sklad/internal/delivery/http/middleware"
	"sklad/internal/delivery/http/router/handler"
	"sklad/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	BrandHandler       *handler.BrandHandler
	CategoryHandler    *handler.CategoryHandler
	ColorHandler       *handler.ColorHandler
	ProductHandler     *handler.ProductHandler
	ReceiptHandler     *handler.ReceiptHandler
	RealizationHandler *handler.RealizationHandler
	ChatHandler        *handler.ChatHandler
	TaskHandler        *handler.TaskHandler
	ReportHandler      *handler.ReportHandler
	ActionHandler      *handler.ActionHandler
	AuthMiddleware     *middleware.AuthMiddleware
	AuditMiddleware    *middleware.AuditMiddleware
	RateLimit          *middleware.RateLimitMiddleware
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

	admin := p.AuthMiddleware.RequireRole(entity.RoleAdmin.String())
	managers := p.AuthMiddleware.RequireRole(entity.RoleAdmin.String(), entity.RoleManager.String())

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, rate limited by client IP since there is no session
	// yet. Registration is an admin operation: accounts are created for
	// employees, there is no self-signup, and like every authenticated
	// mutation it lands in the audit log.
	authGroup := e.Group("/auth", p.RateLimit.LimitByIP)
	{
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.RefreshToken)
		authGroup.POST("/logout", p.UserHandler.Logout)
		authGroup.POST("/register", p.UserHandler.Register,
			p.AuthMiddleware.Authenticate, admin, p.AuditMiddleware.Record)
	}

	// Everything below requires authentication; rate limiting is keyed
	// by user and mutating requests are recorded in the audit log.
	api := e.Group("/api/v1")
	api.Use(p.AuthMiddleware.Authenticate)
	api.Use(p.RateLimit.LimitByUser)
	api.Use(p.AuditMiddleware.Record)

	api.GET("/users/me", p.UserHandler.Me)

	// Account management, admin only
	userGroup := api.Group("/users", admin)
	{
		userGroup.GET("", p.UserHandler.ListUsers)
		userGroup.GET("/:id", p.UserHandler.GetUser)
		userGroup.PUT("/:id", p.UserHandler.UpdateUser)
		userGroup.DELETE("/:id", p.UserHandler.DeleteUser)
	}

	// Catalog references: readable by everyone, mutable by managers
	brandGroup := api.Group("/brands")
	{
		brandGroup.GET("", p.BrandHandler.List)
		brandGroup.GET("/:id", p.BrandHandler.Get)
		brandGroup.POST("", p.BrandHandler.Create, managers)
		brandGroup.PUT("/:id", p.BrandHandler.Update, managers)
		brandGroup.DELETE("/:id", p.BrandHandler.Delete, managers)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", p.CategoryHandler.List)
		categoryGroup.GET("/:id", p.CategoryHandler.Get)
		categoryGroup.POST("", p.CategoryHandler.Create, managers)
		categoryGroup.PUT("/:id", p.CategoryHandler.Update, managers)
		categoryGroup.DELETE("/:id", p.CategoryHandler.Delete, managers)
	}

	colorGroup := api.Group("/colors")
	{
		colorGroup.GET("", p.ColorHandler.List)
		colorGroup.GET("/:id", p.ColorHandler.Get)
		colorGroup.POST("", p.ColorHandler.Create, managers)
		colorGroup.PUT("/:id", p.ColorHandler.Update, managers)
		colorGroup.DELETE("/:id", p.ColorHandler.Delete, managers)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", p.ProductHandler.List)
		productGroup.GET("/:id", p.ProductHandler.Get)
		productGroup.POST("", p.ProductHandler.Create, managers)
		productGroup.PUT("/:id", p.ProductHandler.Update, managers)
		productGroup.DELETE("/:id", p.ProductHandler.Delete, managers)
	}

	// Stock documents: posting and reversal are manager operations
	receiptGroup := api.Group("/receipts")
	{
		receiptGroup.GET("", p.ReceiptHandler.List)
		receiptGroup.GET("/:id", p.ReceiptHandler.Get)
		receiptGroup.POST("", p.ReceiptHandler.Create, managers)
		receiptGroup.DELETE("/:id", p.ReceiptHandler.Delete, managers)
	}

	realizationGroup := api.Group("/realizations")
	{
		realizationGroup.GET("", p.RealizationHandler.List)
		realizationGroup.GET("/:id", p.RealizationHandler.Get)
		realizationGroup.POST("", p.RealizationHandler.Create, managers)
		realizationGroup.DELETE("/:id", p.RealizationHandler.Delete, managers)
	}

	// Staff chat: open to every authenticated employee. Deletion rules
	// (author or admin) are enforced by the usecase.
	chatGroup := api.Group("/chat/messages")
	{
		chatGroup.GET("", p.ChatHandler.ListMessages)
		chatGroup.POST("", p.ChatHandler.PostMessage)
		chatGroup.DELETE("/:id", p.ChatHandler.DeleteMessage)
	}

	// Tasks: workers move their tasks along the workflow, managers
	// create and edit them
	taskGroup := api.Group("/tasks")
	{
		taskGroup.GET("", p.TaskHandler.List)
		taskGroup.GET("/:id", p.TaskHandler.Get)
		taskGroup.POST("", p.TaskHandler.Create, managers)
		taskGroup.PUT("/:id", p.TaskHandler.Update, managers)
		taskGroup.POST("/:id/status", p.TaskHandler.ChangeStatus)
		taskGroup.DELETE("/:id", p.TaskHandler.Delete, managers)
	}

	// Reports for admins and managers, the audit log for admins only
	reportGroup := api.Group("/reports", managers)
	{
		reportGroup.GET("/stock", p.ReportHandler.StockLevels)
		reportGroup.GET("/movements", p.ReportHandler.Movements)
		reportGroup.GET("/summary", p.ReportHandler.Summary)
	}

	api.GET("/actions", p.ActionHandler.List, admin)
}
