package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is append-only. Deleting sets IsDeleted and keeps content and
// reactions for audit; rows are never physically removed. Clients render
// deleted messages as placeholders, so listing does not filter them.
type Message struct {
	ID             string    `gorm:"primaryKey;type:text" json:"id"`
	ConversationID string    `gorm:"index;type:text;not null" json:"conversationId"`
	SenderID       string    `gorm:"index;type:text;not null" json:"senderId"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	IsDeleted      bool      `gorm:"default:false" json:"isDeleted"`
	CreatedAt      time.Time `gorm:"index" json:"createdAt"`

	Sender    *User             `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Reactions []MessageReaction `gorm:"foreignKey:MessageID" json:"reactions"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

// MessageReaction stores emoji reactions on messages.
// A user reacts with a given emoji at most once per message.
type MessageReaction struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	MessageID string    `gorm:"type:text;not null;uniqueIndex:idx_unique_reaction,priority:1" json:"messageId"`
	UserID    string    `gorm:"type:text;not null;uniqueIndex:idx_unique_reaction,priority:2" json:"userId"`
	Emoji     string    `gorm:"type:text;not null;uniqueIndex:idx_unique_reaction,priority:3" json:"emoji"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *MessageReaction) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
