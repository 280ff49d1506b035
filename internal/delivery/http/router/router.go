// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gamestore/internal/delivery/http/middleware"
	"gamestore/internal/delivery/http/router/handler"
	"gamestore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CompanyHandler *handler.CompanyHandler
	GameHandler    *handler.GameHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	companyHandler *handler.CompanyHandler
	gameHandler    *handler.GameHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		companyHandler: params.CompanyHandler,
		gameHandler:    params.GameHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// User routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/sessions", r.userHandler.Login)
		userGroup.POST("/forgot-password", r.userHandler.ForgotPassword)
		userGroup.POST("/reset-password/:token", r.userHandler.ResetPassword)
	}

	// User routes that require authentication and the "user" role
	userAuthGroup := api.Group("/users")
	userAuthGroup.Use(r.authMiddleware.Authenticate)
	userAuthGroup.Use(r.authMiddleware.RequireRole(entity.RoleUser))
	{
		userAuthGroup.GET("/me", r.userHandler.Me)
		userAuthGroup.GET("", r.userHandler.List)
		userAuthGroup.PATCH("/profile", r.userHandler.UpdateProfile)
		userAuthGroup.POST("/commendAndRate/:gameId", r.userHandler.AddComment)
		userAuthGroup.DELETE("/commendAndRate/:commentId", r.userHandler.RemoveComment)
		userAuthGroup.POST("/orders/:gameId", r.userHandler.PurchaseGame)
		userAuthGroup.GET("/orders", r.userHandler.ListOrders)
		userAuthGroup.POST("/wishlist/:gameId", r.userHandler.AddToWishlist)
		userAuthGroup.DELETE("/wishlist/:gameId", r.userHandler.RemoveFromWishlist)
	}

	// Company routes
	companyGroup := api.Group("/companies")
	{
		companyGroup.POST("", r.companyHandler.Register)
		companyGroup.POST("/sessions", r.companyHandler.Login)
		companyGroup.POST("/forgot-password", r.companyHandler.ForgotPassword)
		companyGroup.POST("/reset-password/:token", r.companyHandler.ResetPassword)
	}

	// Company routes that require authentication and the "company" role
	companyAuthGroup := api.Group("/companies")
	companyAuthGroup.Use(r.authMiddleware.Authenticate)
	companyAuthGroup.Use(r.authMiddleware.RequireRole(entity.RoleCompany))
	{
		companyAuthGroup.GET("/me", r.companyHandler.Me)
		companyAuthGroup.GET("", r.companyHandler.List)
		companyAuthGroup.PATCH("/profile", r.companyHandler.UpdateProfile)
	}

	// Catalog routes; reads are public, writes belong to companies
	gameGroup := api.Group("/games")
	{
		gameGroup.GET("", r.gameHandler.List)
		gameGroup.GET("/:gameId", r.gameHandler.Get)
	}

	gameAuthGroup := api.Group("/games")
	gameAuthGroup.Use(r.authMiddleware.Authenticate)
	gameAuthGroup.Use(r.authMiddleware.RequireRole(entity.RoleCompany))
	{
		gameAuthGroup.POST("", r.gameHandler.Create)
		gameAuthGroup.PATCH("/:gameId", r.gameHandler.Update)
		gameAuthGroup.DELETE("/:gameId", r.gameHandler.Delete)
	}
}
