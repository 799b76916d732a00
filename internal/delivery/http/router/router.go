// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/http/middleware"
	"blog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		postHandler:    params.PostHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Post routes. Reads are public, mutations require authentication.
	postGroup := api.Group("/posts")
	{
		postGroup.GET("", r.postHandler.List)
		postGroup.GET("/:id", r.postHandler.Get)
		postGroup.POST("", r.postHandler.Create, r.authMiddleware.Authenticate)
		postGroup.PUT("/:id", r.postHandler.Update, r.authMiddleware.Authenticate)
		postGroup.DELETE("/:id", r.postHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Comment routes, same access pattern as posts.
	commentGroup := api.Group("/comments")
	{
		commentGroup.GET("", r.commentHandler.List)
		commentGroup.GET("/:id", r.commentHandler.Get)
		commentGroup.POST("", r.commentHandler.Create, r.authMiddleware.Authenticate)
		commentGroup.PUT("/:id", r.commentHandler.Update, r.authMiddleware.Authenticate)
		commentGroup.DELETE("/:id", r.commentHandler.Delete, r.authMiddleware.Authenticate)
	}
}
