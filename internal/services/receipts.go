package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/models"
)

// MarkRead moves the caller's read high-water mark for a conversation to now.
func MarkRead(userID, conversationID string) error {
	if _, err := GetConversation(conversationID); err != nil {
		return err
	}
	receipt := models.ReadReceipt{
		UserID:         userID,
		ConversationID: conversationID,
		LastReadAt:     time.Now(),
	}
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "conversation_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_read_at"}),
	}).Create(&receipt).Error
}

// UnreadCount counts messages from other senders created after the caller's
// last read. With no receipt the mark is the zero time, so every prior
// message from others is unread.
func UnreadCount(userID, conversationID string) (int64, error) {
	var lastRead time.Time

	var receipt models.ReadReceipt
	err := database.DB.
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		First(&receipt).Error
	if err == nil {
		lastRead = receipt.LastReadAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	var n int64
	err = database.DB.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND created_at > ?", conversationID, userID, lastRead).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
