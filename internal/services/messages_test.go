package services

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/The-morning-star23/tars-chart/pkg/errors"
)

func TestSendMessage_Validation(t *testing.T) {
	SetupTestDB()

	conv, err := GetOrCreateDirect("a", "b")
	assert.NoError(t, err)

	_, err = SendMessage("a", conv.ID, "   ")
	assertAppError(t, err, http.StatusBadRequest)

	_, err = SendMessage("a", "no-such-conversation", "hello")
	assertAppError(t, err, http.StatusNotFound)

	_, err = SendMessage("stranger", conv.ID, "hello")
	assertAppError(t, err, http.StatusForbidden)
}

func TestListMessages_OrderAndDeleted(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("a", "b")
	m1, err := SendMessage("a", conv.ID, "first")
	assert.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	m2, err := SendMessage("b", conv.ID, "second")
	assert.NoError(t, err)

	assert.NoError(t, SoftDeleteMessage("a", m1.ID))

	msgs, err := ListMessages(conv.ID)
	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	// Oldest first, deleted messages still present
	assert.Equal(t, m1.ID, msgs[0].ID)
	assert.True(t, msgs[0].IsDeleted)
	assert.Equal(t, "first", msgs[0].Content) // content retained for audit
	assert.Equal(t, m2.ID, msgs[1].ID)
	assert.False(t, msgs[1].IsDeleted)
}

func TestSoftDelete(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("a", "b")
	msg, _ := SendMessage("a", conv.ID, "delete me")

	assertAppError(t, SoftDeleteMessage("a", "missing"), http.StatusNotFound)
	assertAppError(t, SoftDeleteMessage("b", msg.ID), http.StatusForbidden)

	assert.NoError(t, SoftDeleteMessage("a", msg.ID))
	// Idempotent: second delete is a no-op, not an error
	assert.NoError(t, SoftDeleteMessage("a", msg.ID))

	msgs, _ := ListMessages(conv.ID)
	assert.True(t, msgs[0].IsDeleted)
}

func TestToggleReaction_Involution(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("a", "b")
	msg, _ := SendMessage("a", conv.ID, "react to me")

	assert.NoError(t, ToggleReaction("b", msg.ID, "👍"))
	msgs, _ := ListMessages(conv.ID)
	assert.Len(t, msgs[0].Reactions, 1)
	assert.Equal(t, "👍", msgs[0].Reactions[0].Emoji)
	assert.Equal(t, "b", msgs[0].Reactions[0].UserID)

	// Toggling again removes it
	assert.NoError(t, ToggleReaction("b", msg.ID, "👍"))
	msgs, _ = ListMessages(conv.ID)
	assert.Len(t, msgs[0].Reactions, 0)
}

func TestToggleReaction_PerUserPerEmoji(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("a", "b")
	msg, _ := SendMessage("a", conv.ID, "hi")

	assert.NoError(t, ToggleReaction("a", msg.ID, "🔥"))
	assert.NoError(t, ToggleReaction("b", msg.ID, "🔥"))
	assert.NoError(t, ToggleReaction("b", msg.ID, "👍"))

	msgs, _ := ListMessages(conv.ID)
	assert.Len(t, msgs[0].Reactions, 3)
}

func TestToggleReaction_DeletedMessageAllowed(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("a", "b")
	msg, _ := SendMessage("a", conv.ID, "soon gone")
	assert.NoError(t, SoftDeleteMessage("a", msg.ID))

	assert.NoError(t, ToggleReaction("b", msg.ID, "😢"))
	msgs, _ := ListMessages(conv.ID)
	assert.Len(t, msgs[0].Reactions, 1)
}

// A message created without a preloaded sender serializes without a
// "sender" key instead of an empty user object.
func TestMessageJSON_OmitsSenderWhenNotLoaded(t *testing.T) {
	SetupTestDB()

	conv, _ := GetOrCreateDirect("a", "b")
	msg, err := SendMessage("a", conv.ID, "hello")
	assert.NoError(t, err)

	raw, err := json.Marshal(msg)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), `"sender"`)
	assert.Contains(t, string(raw), `"senderId":"a"`)
}

func TestToggleReaction_NotFound(t *testing.T) {
	SetupTestDB()

	assertAppError(t, ToggleReaction("a", "missing", "👍"), http.StatusNotFound)
}

func assertAppError(t *testing.T, err error, code int) {
	t.Helper()
	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	if assert.True(t, ok, "expected *AppError, got %T", err) {
		assert.Equal(t, code, appErr.Code)
	}
}
