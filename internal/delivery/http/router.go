package http

import (
	"github.com/devmatch/backend/internal/delivery/http/handler"
	"github.com/devmatch/backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	developerHandler *handler.DeveloperHandler
	matchHandler     *handler.MatchHandler
	chatHandler      *handler.ChatHandler
	wsHandler        *handler.WSHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	developerHandler *handler.DeveloperHandler,
	matchHandler *handler.MatchHandler,
	chatHandler *handler.ChatHandler,
	wsHandler *handler.WSHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:      authHandler,
		userHandler:      userHandler,
		developerHandler: developerHandler,
		matchHandler:     matchHandler,
		chatHandler:      chatHandler,
		wsHandler:        wsHandler,
		authMiddleware:   authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// WebSocket upgrade authenticates its own bearer credential.
	router.GET("/ws", r.wsHandler.ServeWebSocket)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// User profile routes
			users := protected.Group("/users")
			{
				users.GET("/:id", r.userHandler.GetUser)
				users.PUT("/me/profile", r.userHandler.UpdateMyProfile)
			}

			// Developer discovery and actions
			developers := protected.Group("/developers")
			{
				developers.GET("/discover", r.developerHandler.Discover)
				developers.POST("/:id/like", r.developerHandler.Like)
				developers.POST("/:id/dislike", r.developerHandler.Dislike)
			}

			// Match routes
			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.GetMyMatches)
				matches.GET("/:id", r.matchHandler.GetMatchDetails)
			}

			// Chat history
			chat := protected.Group("/chat")
			{
				chat.GET("/messages/:roomId", r.chatHandler.GetMessages)
			}
		}
	}

	return router
}
