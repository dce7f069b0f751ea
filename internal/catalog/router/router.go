package router

import (
	"catalog7/internal/catalog/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.CatalogHandler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "x-user-id"},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Product Routes
	v1.PUT("/products", h.PutProduct)
	v1.POST("/products/batch", h.PostProductsBatch)
	v1.POST("/products/batch/async", h.PostProductsBatchAsync)
	v1.PUT("/products/delete", h.PutProductsDelete)
	// Static segments before the :sku param so /skus doesn't bind as a SKU
	v1.GET("/products/skus", h.GetProductSKUs)
	v1.GET("/products/:sku", h.GetProduct)
	v1.GET("/products", h.GetProducts)

	// Post Routes
	v1.POST("/posts/sync", h.PostPostsSync)
	v1.GET("/posts/:slug", h.GetPost)
	v1.GET("/posts", h.GetPosts)

	// Audit log
	v1.GET("/operations", h.GetOperationLogs)
}
