package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/The-morning-star23/tars-chart/internal/handlers"
	"github.com/The-morning-star23/tars-chart/internal/middleware"
)

func RegisterPresenceRoutes(r gin.IRouter) {
	presence := r.Group("/presence")
	{
		heartbeat := presence.Group("")
		heartbeat.Use(middleware.OptionalAuthMiddleware())
		heartbeat.POST("/heartbeat", handlers.Heartbeat)

		// Online list is public
		presence.GET("/online", handlers.OnlineUsers)
	}
}
