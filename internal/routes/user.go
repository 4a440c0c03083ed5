package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/The-morning-star23/tars-chart/internal/handlers"
	"github.com/The-morning-star23/tars-chart/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.POST("/sync", handlers.SyncUser)
		users.GET("", handlers.SearchUsers) // ?search=...
	}
}
