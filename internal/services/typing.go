package services

import (
	"time"

	"gorm.io/gorm/clause"

	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/models"
)

// Typing rows older than this are treated as stale when reading. Clients
// refresh the flag roughly every 2s while typing, so 10s comfortably covers
// refresh jitter while still clearing indicators left by crashed clients.
const typingStaleAfter = 10 * time.Second

// SetTypingStatus upserts the caller's typing flag for a conversation.
// Fire-and-forget from the client's perspective; a lost update is corrected
// by the next debounce tick.
func SetTypingStatus(userID, conversationID string, isTyping bool) error {
	row := models.TypingStatus{
		ConversationID: conversationID,
		UserID:         userID,
		IsTyping:       isTyping,
		UpdatedAt:      time.Now(),
	}
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "conversation_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_typing", "updated_at"}),
	}).Create(&row).Error
}

// TypingUsers returns the IDs of users currently typing in a conversation,
// excluding the caller. Stale rows are filtered read-side; no sweeper runs.
func TypingUsers(callerID, conversationID string) ([]string, error) {
	cutoff := time.Now().Add(-typingStaleAfter)

	var rows []models.TypingStatus
	err := database.DB.
		Where("conversation_id = ? AND user_id <> ? AND is_typing = ? AND updated_at > ?",
			conversationID, callerID, true, cutoff).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	return ids, nil
}
