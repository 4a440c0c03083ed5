package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/models"
)

func TestTypingUsers_ExcludesSelfAndFalse(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("me", "other")
	assert.NoError(t, SetTypingStatus("me", conv.ID, true))
	assert.NoError(t, SetTypingStatus("other", conv.ID, true))

	ids, err := TypingUsers("me", conv.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"other"}, ids)

	// Clearing the flag removes the indicator
	assert.NoError(t, SetTypingStatus("other", conv.ID, false))
	ids, err = TypingUsers("me", conv.ID)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTypingUsers_StaleRowsIgnored(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("me", "other")
	assert.NoError(t, SetTypingStatus("other", conv.ID, true))

	// Simulate a client that crashed mid-typing and never cleared the flag
	err := database.DB.Model(&models.TypingStatus{}).
		Where("conversation_id = ? AND user_id = ?", conv.ID, "other").
		Update("updated_at", time.Now().Add(-time.Minute)).Error
	assert.NoError(t, err)

	ids, err := TypingUsers("me", conv.ID)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}
