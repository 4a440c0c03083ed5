package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/models"
	"github.com/The-morning-star23/tars-chart/pkg/logger"
)

// ConversationSummary is the sidebar view of one conversation: the thread
// itself plus everything the client needs to render a list row.
type ConversationSummary struct {
	Conversation models.Conversation `json:"conversation"`
	OtherUser    *models.User        `json:"otherUser,omitempty"`
	OtherOnline  bool                `json:"otherOnline"`
	LastMessage  *models.Message     `json:"lastMessage,omitempty"`
	UnreadCount  int64               `json:"unreadCount"`
	MemberCount  int64               `json:"memberCount,omitempty"`
}

// lastActivity is the sort key: most recent message time, falling back to
// the conversation's own creation time when the thread is empty.
func (s *ConversationSummary) lastActivity() time.Time {
	if s.LastMessage != nil {
		return s.LastMessage.CreatedAt
	}
	return s.Conversation.CreatedAt
}

// ListEnriched returns the caller's conversations, newest activity first,
// each enriched with the partner profile (direct), last message, unread
// count and member count (group). A failed sub-lookup degrades that single
// row instead of failing the whole list.
func ListEnriched(userID string) ([]ConversationSummary, error) {
	convs, err := ListForUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		s := ConversationSummary{Conversation: conv}

		if conv.IsGroup {
			if n, err := MemberCount(conv.ID); err == nil {
				s.MemberCount = n
			} else {
				logger.Warn().Err(err).Str("conversationId", conv.ID).Msg("Omitting member count")
			}
		} else if otherID := otherParticipant(&conv, userID); otherID != "" {
			var other models.User
			if err := database.DB.First(&other, "id = ?", otherID).Error; err == nil {
				s.OtherUser = &other
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn().Err(err).Str("conversationId", conv.ID).Msg("Omitting partner profile")
			}
			if online, err := IsOnline(otherID, now); err == nil {
				s.OtherOnline = online
			} else {
				logger.Warn().Err(err).Str("conversationId", conv.ID).Msg("Omitting partner presence")
			}
		}

		// Soft-deleted messages are hidden from rendering, so they make no
		// preview. The newest surviving message also drives the sort key,
		// keeping preview and ordering consistent.
		var last models.Message
		err := database.DB.
			Where("conversation_id = ? AND is_deleted = ?", conv.ID, false).
			Order("created_at desc").
			First(&last).Error
		if err == nil {
			s.LastMessage = &last
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn().Err(err).Str("conversationId", conv.ID).Msg("Omitting last message")
		}

		if n, err := UnreadCount(userID, conv.ID); err == nil {
			s.UnreadCount = n
		} else {
			logger.Warn().Err(err).Str("conversationId", conv.ID).Msg("Omitting unread count")
		}

		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].lastActivity().After(summaries[j].lastActivity())
	})
	return summaries, nil
}

// otherParticipant resolves the partner in a direct conversation.
func otherParticipant(conv *models.Conversation, userID string) string {
	if conv.ParticipantOne != nil && *conv.ParticipantOne != userID {
		return *conv.ParticipantOne
	}
	if conv.ParticipantTwo != nil && *conv.ParticipantTwo != userID {
		return *conv.ParticipantTwo
	}
	return ""
}
