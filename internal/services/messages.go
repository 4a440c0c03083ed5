package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/models"
	apperrors "github.com/The-morning-star23/tars-chart/pkg/errors"
	"github.com/The-morning-star23/tars-chart/pkg/utils"
)

// SendMessage appends a message to a conversation. Content must be non-empty
// after trimming, and the sender must belong to the conversation.
func SendMessage(senderID, conversationID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.BadRequest("message content required")
	}

	conv, err := GetConversation(conversationID)
	if err != nil {
		return nil, err
	}
	ok, err := IsParticipant(conv, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Forbidden("not a participant in this conversation")
	}

	msg := models.Message{
		ID:             utils.GenerateID(),
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListMessages returns a conversation's messages oldest first. Soft-deleted
// messages are included; clients decide how to render them.
func ListMessages(conversationID string) ([]models.Message, error) {
	var msgs []models.Message
	err := database.DB.
		Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Preload("Sender").
		Preload("Reactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("message_reactions.created_at asc")
		}).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// SoftDeleteMessage hides a message without removing the record. Only the
// sender may delete. Idempotent: deleting an already-deleted message is a
// no-op.
func SoftDeleteMessage(requesterID, messageID string) error {
	var msg models.Message
	if err := database.DB.First(&msg, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("message not found")
		}
		return err
	}
	if msg.SenderID != requesterID {
		return apperrors.Forbidden("only the sender can delete a message")
	}
	return database.DB.Model(&msg).Update("is_deleted", true).Error
}

// ToggleReaction adds the (emoji, user) reaction if absent and removes it if
// present. Reacting to a soft-deleted message is allowed.
func ToggleReaction(userID, messageID, emoji string) error {
	if emoji == "" {
		return apperrors.BadRequest("emoji required")
	}

	var msg models.Message
	if err := database.DB.First(&msg, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("message not found")
		}
		return err
	}

	var existing models.MessageReaction
	err := database.DB.
		Where("message_id = ? AND user_id = ? AND emoji = ?", messageID, userID, emoji).
		First(&existing).Error
	if err == nil {
		return database.DB.Delete(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	reaction := models.MessageReaction{
		ID:        utils.GenerateID(),
		MessageID: messageID,
		UserID:    userID,
		Emoji:     emoji,
		CreatedAt: time.Now(),
	}
	if err := database.DB.Create(&reaction).Error; err != nil {
		// Concurrent duplicate toggle: the unique reaction index already
		// holds the row, so the toggle's end state is correct.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}
