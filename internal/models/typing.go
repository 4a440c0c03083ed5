package models

import "time"

// TypingStatus is an ephemeral per-conversation, per-user flag. Clients
// refresh it on a keystroke debounce; UpdatedAt lets readers ignore rows a
// crashed client never cleared.
type TypingStatus struct {
	ConversationID string    `gorm:"primaryKey;type:text" json:"conversationId"`
	UserID         string    `gorm:"primaryKey;type:text" json:"userId"`
	IsTyping       bool      `json:"isTyping"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
