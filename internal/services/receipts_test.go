package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnreadCount_NoReceipt(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("me", "other")
	_, err := SendMessage("other", conv.ID, "one")
	assert.NoError(t, err)
	_, err = SendMessage("other", conv.ID, "two")
	assert.NoError(t, err)
	// Own messages never count as unread
	_, err = SendMessage("me", conv.ID, "mine")
	assert.NoError(t, err)

	n, err := UnreadCount("me", conv.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestUnreadCount_MarkReadResetsThenIncrements(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("me", "other")
	_, err := SendMessage("other", conv.ID, "before read")
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	assert.NoError(t, MarkRead("me", conv.ID))

	n, err := UnreadCount("me", conv.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	time.Sleep(5 * time.Millisecond)
	_, err = SendMessage("other", conv.ID, "after read")
	assert.NoError(t, err)

	n, err = UnreadCount("me", conv.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMarkRead_UpsertsSingleRow(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("me", "other")
	assert.NoError(t, MarkRead("me", conv.ID))
	assert.NoError(t, MarkRead("me", conv.ID))

	n, err := UnreadCount("me", conv.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
