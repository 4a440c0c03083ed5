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

// GetOrCreateDirect resolves the single direct conversation for an unordered
// user pair, creating it on first contact. Order-independent and idempotent:
// (a, b) and (b, a) always resolve to the same row. Group conversations never
// match, even when their membership is exactly the pair.
//
// Self-conversations are rejected; the product has no notes-to-self thread.
func GetOrCreateDirect(callerID, otherID string) (*models.Conversation, error) {
	if otherID == "" {
		return nil, apperrors.BadRequest("otherUserId required")
	}
	if callerID == otherID {
		return nil, apperrors.BadRequest("cannot start a conversation with yourself")
	}

	conv, err := findDirect(callerID, otherID)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}

	// New pairs are stored lexicographically so the unique pair index
	// serializes concurrent creates regardless of argument order.
	first, second := callerID, otherID
	if second < first {
		first, second = second, first
	}
	created := models.Conversation{
		ID:             utils.GenerateID(),
		ParticipantOne: &first,
		ParticipantTwo: &second,
		CreatedAt:      time.Now(),
	}
	if err := database.DB.Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race; the winner's row exists now.
			return findDirect(callerID, otherID)
		}
		return nil, err
	}
	return &created, nil
}

// findDirect checks both pair orders. Two indexed lookups, one per stored
// order, cover rows written before pairs were normalized.
func findDirect(a, b string) (*models.Conversation, error) {
	var conv models.Conversation

	err := database.DB.
		Where("is_group = ? AND participant_one = ? AND participant_two = ?", false, a, b).
		First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = database.DB.
		Where("is_group = ? AND participant_two = ? AND participant_one = ?", false, a, b).
		First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return nil, nil
}

// CreateGroup creates a new group conversation. The caller is always a
// member. No dedup: two groups with identical name and membership are
// distinct by design, since group identity is intentional.
func CreateGroup(callerID, name string, memberIDs []string) (*models.Conversation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.BadRequest("group name required")
	}

	seen := map[string]bool{callerID: true}
	members := []string{callerID}
	for _, id := range memberIDs {
		if id != "" && !seen[id] {
			seen[id] = true
			members = append(members, id)
		}
	}
	if len(members) < 2 {
		return nil, apperrors.BadRequest("a group needs at least one member besides the creator")
	}

	conv := models.Conversation{
		ID:        utils.GenerateID(),
		IsGroup:   true,
		GroupName: name,
		CreatedAt: time.Now(),
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conv).Error; err != nil {
			return err
		}
		rows := make([]models.ConversationMember, 0, len(members))
		for _, id := range members {
			rows = append(rows, models.ConversationMember{
				ConversationID: conv.ID,
				UserID:         id,
				JoinedAt:       time.Now(),
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListForUser returns every conversation the user belongs to: direct rows
// where they are either participant plus groups found via the membership
// table.
func ListForUser(userID string) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := database.DB.
		Distinct("conversations.*").
		Joins("LEFT JOIN conversation_members cm ON cm.conversation_id = conversations.id").
		Where("(conversations.is_group = ? AND (conversations.participant_one = ? OR conversations.participant_two = ?)) OR (conversations.is_group = ? AND cm.user_id = ?)",
			false, userID, userID, true, userID).
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

// GetConversation fetches a conversation by ID.
func GetConversation(conversationID string) (*models.Conversation, error) {
	var conv models.Conversation
	if err := database.DB.First(&conv, "id = ?", conversationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("conversation not found")
		}
		return nil, err
	}
	return &conv, nil
}

// IsParticipant reports whether the user belongs to the conversation.
func IsParticipant(conv *models.Conversation, userID string) (bool, error) {
	if !conv.IsGroup {
		return (conv.ParticipantOne != nil && *conv.ParticipantOne == userID) ||
			(conv.ParticipantTwo != nil && *conv.ParticipantTwo == userID), nil
	}
	var n int64
	err := database.DB.Model(&models.ConversationMember{}).
		Where("conversation_id = ? AND user_id = ?", conv.ID, userID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemberCount returns the member count of a group conversation.
func MemberCount(conversationID string) (int64, error) {
	var n int64
	err := database.DB.Model(&models.ConversationMember{}).
		Where("conversation_id = ?", conversationID).
		Count(&n).Error
	return n, err
}
