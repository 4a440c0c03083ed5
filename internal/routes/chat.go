package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/The-morning-star23/tars-chart/internal/handlers"
	"github.com/The-morning-star23/tars-chart/internal/middleware"
)

func RegisterChatRoutes(r gin.IRouter) {
	chat := r.Group("/chat")

	// Reads degrade gracefully for anonymous callers (empty list / no-op)
	reads := chat.Group("")
	reads.Use(middleware.OptionalAuthMiddleware())
	{
		reads.GET("/conversations", handlers.ListConversations)
		reads.GET("/messages", handlers.ListMessages) // ?conversationId=...
		reads.POST("/conversations/:id/read", handlers.MarkConversationRead)
	}

	// Writes require a caller identity
	writes := chat.Group("")
	writes.Use(middleware.AuthMiddleware())
	{
		writes.POST("/direct", handlers.GetOrCreateDirectConversation)
		writes.POST("/group", handlers.CreateGroupConversation)
		writes.POST("/messages", handlers.SendMessage)
		writes.DELETE("/messages/:id", handlers.DeleteMessage)
		writes.POST("/messages/:id/reactions", handlers.ToggleReaction)
		writes.POST("/conversations/:id/typing", handlers.SetTyping)
		writes.GET("/conversations/:id/typing", handlers.GetTyping)
	}
}
