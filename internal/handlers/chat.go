package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/The-morning-star23/tars-chart/internal/services"
)

// GetOrCreateDirectConversation resolves (or creates) the single direct
// conversation between the caller and another user.
func GetOrCreateDirectConversation(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var req struct {
		OtherUserID string `json:"otherUserId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	conv, err := services.GetOrCreateDirect(userId, req.OtherUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversationId": conv.ID, "conversation": conv})
}

// CreateGroupConversation creates a new named group. The caller is added to
// the member list if they left themselves out.
func CreateGroupConversation(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var req struct {
		Name      string   `json:"name" binding:"required"`
		MemberIDs []string `json:"memberIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	conv, err := services.CreateGroup(userId, req.Name, req.MemberIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversationId": conv.ID, "conversation": conv})
}

// ListConversations returns the caller's enriched conversation list.
// Anonymous callers get an empty list rather than an error.
func ListConversations(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusOK, gin.H{"conversations": []services.ConversationSummary{}})
		return
	}

	summaries, err := services.ListEnriched(userId.(string))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": summaries})
}

// MarkConversationRead moves the caller's read marker to now.
// No-op for anonymous callers.
func MarkConversationRead(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		c.Status(http.StatusNoContent)
		return
	}

	if err := services.MarkRead(userId.(string), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SendMessage appends a message to a conversation.
func SendMessage(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var req struct {
		ConversationID string `json:"conversationId" binding:"required"`
		Content        string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	msg, err := services.SendMessage(userId, req.ConversationID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messageId": msg.ID, "message": msg})
}

// ListMessages returns a conversation's messages, oldest first. Anonymous
// callers get an empty list.
// GET /api/chat/messages?conversationId=...
func ListMessages(c *gin.Context) {
	if _, exists := c.Get("userId"); !exists {
		c.JSON(http.StatusOK, gin.H{"messages": []interface{}{}})
		return
	}

	conversationID := c.Query("conversationId")
	if conversationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "conversationId required"})
		return
	}

	messages, err := services.ListMessages(conversationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// DeleteMessage soft-deletes a message. Only the sender may delete.
func DeleteMessage(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	if err := services.SoftDeleteMessage(userId, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleReaction flips the caller's (emoji, message) reaction.
func ToggleReaction(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var req struct {
		Emoji string `json:"emoji" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := services.ToggleReaction(userId, c.Param("id"), req.Emoji); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetTyping upserts the caller's typing flag for a conversation.
func SetTyping(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	var req struct {
		IsTyping *bool `json:"isTyping" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := services.SetTypingStatus(userId, c.Param("id"), *req.IsTyping); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTyping returns who is typing in a conversation, excluding the caller.
func GetTyping(c *gin.Context) {
	userId := c.MustGet("userId").(string)

	ids, err := services.TypingUsers(userId, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"typingUserIds": ids})
}
