package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/The-morning-star23/tars-chart/internal/services"
	"github.com/The-morning-star23/tars-chart/pkg/utils"
)

// SyncUser upserts the caller's profile from their token claims. The
// frontend calls this once after every successful sign-in so renames and
// avatar changes at the identity provider show up here.
func SyncUser(c *gin.Context) {
	claims := c.MustGet("claims").(*utils.Claims)

	user, err := services.SyncUser(claims.UserID, claims.Name, claims.Email, claims.AvatarURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SearchUsers returns users other than the caller, optionally filtered.
// GET /api/users?search=...
func SearchUsers(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	users, err := services.SearchUsers(userId, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
