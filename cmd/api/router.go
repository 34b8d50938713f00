package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cozastore-backend/internal/shared/middleware"
	"cozastore-backend/internal/shared/response"
	"cozastore-backend/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.GET("/api/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "database unreachable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}

	requireAuth := middleware.AuthMiddleware(c.JWTManager)
	requireAdmin := middleware.AdminMiddleware()

	categories := api.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.POST("", requireAuth, requireAdmin, c.CategoryHandler.Create)
		categories.PUT("/:id", requireAuth, requireAdmin, c.CategoryHandler.Update)
		categories.DELETE("/:id", requireAuth, requireAdmin, c.CategoryHandler.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("", c.ProductHandler.GetAll)
		products.GET("/:id", c.ProductHandler.GetByID)
		products.GET("/category/:categoryId", c.ProductHandler.GetByCategory)
		products.POST("", requireAuth, requireAdmin, c.ProductHandler.Create)
		products.PUT("/:id", requireAuth, requireAdmin, c.ProductHandler.Update)
		products.DELETE("/:id", requireAuth, requireAdmin, c.ProductHandler.Delete)
	}

	cart := api.Group("/cartitems", requireAuth)
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.POST("", c.CartHandler.AddToCart)
		cart.PUT("/:id/quantity", c.CartHandler.UpdateQuantity)
		cart.DELETE("/clear", c.CartHandler.Clear)
		cart.DELETE("/:id", c.CartHandler.Remove)
	}

	return router
}
