package models

import "time"

// Conversation is either a direct (two-party) thread or a named group.
// The variant is fixed at creation time.
//
// Direct rows store the unordered participant pair in lexicographic order.
// idx_direct_pair makes the pair unique (NULL participants on group rows do
// not collide), so a concurrent duplicate get-or-create serializes on the
// constraint instead of racing. idx_pair_reverse is the second lookup path,
// keyed (participant_two, participant_one).
type Conversation struct {
	ID             string  `gorm:"primaryKey;type:text" json:"id"`
	IsGroup        bool    `gorm:"default:false" json:"isGroup"`
	ParticipantOne *string `gorm:"type:text;uniqueIndex:idx_direct_pair,priority:1;index:idx_pair_reverse,priority:2" json:"participantOne,omitempty"`
	ParticipantTwo *string `gorm:"type:text;uniqueIndex:idx_direct_pair,priority:2;index:idx_pair_reverse,priority:1" json:"participantTwo,omitempty"`
	GroupName      string  `gorm:"type:text" json:"groupName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Members []ConversationMember `gorm:"foreignKey:ConversationID" json:"-"`
}

// ConversationMember is the membership table for group conversations,
// indexed by user so listing a user's groups does not scan all groups.
type ConversationMember struct {
	ConversationID string    `gorm:"primaryKey;type:text" json:"conversationId"`
	UserID         string    `gorm:"primaryKey;type:text;index" json:"userId"`
	JoinedAt       time.Time `json:"joinedAt"`
}
