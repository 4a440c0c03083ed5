package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/services"
)

const onlineUsersCacheKey = "presence:online_users"

// Heartbeat records the caller as alive. Anonymous heartbeats are a no-op
// so a client that lost its session does not see errors in its beat loop.
func Heartbeat(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		c.Status(http.StatusNoContent)
		return
	}

	if err := services.Heartbeat(userId.(string)); err != nil {
		respondError(c, err)
		return
	}

	// The cached online list is at most a few seconds stale; drop it so a
	// fresh sign-in shows up promptly.
	_ = database.CacheInvalidate(onlineUsersCacheKey)

	c.Status(http.StatusNoContent)
}

// OnlineUsers returns the IDs of users with a heartbeat inside the presence
// window. Public; presence is not sensitive. The result is cached briefly in
// Redis since every connected client polls it.
func OnlineUsers(c *gin.Context) {
	var ids []string
	if err := database.CacheGet(onlineUsersCacheKey, &ids); err == nil {
		c.JSON(http.StatusOK, gin.H{"onlineUserIds": ids})
		return
	}

	ids, err := services.OnlineUserIDs(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	_ = database.CacheSet(onlineUsersCacheKey, ids, 5*time.Second)

	c.JSON(http.StatusOK, gin.H{"onlineUserIds": ids})
}
