package models

import "time"

// ReadReceipt is the per-user, per-conversation high-water mark used to
// compute unread counts. Upserted on every read, never deleted.
type ReadReceipt struct {
	UserID         string    `gorm:"primaryKey;type:text" json:"userId"`
	ConversationID string    `gorm:"primaryKey;type:text" json:"conversationId"`
	LastReadAt     time.Time `json:"lastReadAt"`
}
