// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProductHandler    *handler.ProductHandler
	CartHandler       *handler.CartHandler
	AuthMiddleware    *middleware.AuthMiddleware
	VisitorMiddleware *middleware.VisitorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	productHandler    *handler.ProductHandler
	cartHandler       *handler.CartHandler
	authMiddleware    *middleware.AuthMiddleware
	visitorMiddleware *middleware.VisitorMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		productHandler:    params.ProductHandler,
		cartHandler:       params.CartHandler,
		authMiddleware:    params.AuthMiddleware,
		visitorMiddleware: params.VisitorMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else belongs to a visitor
	visitor := e.Group("", r.visitorMiddleware.Resolve)

	authGroup := visitor.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	productsGroup := visitor.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("/refresh", r.productHandler.RefreshProducts)
		productsGroup.GET("/categories", r.productHandler.ListCategories)
		productsGroup.POST("/scan", r.productHandler.ScanProduct)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.GET("/:id/qr", r.productHandler.GetProductQR)

		// Local products belong to the signed-in visitor
		productsGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate)
	}

	cartGroup := visitor.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}
}
