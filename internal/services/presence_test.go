package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOnlineUserIDs_WindowBoundary(t *testing.T) {
	SetupTestDB()

	beat := time.Now()
	assert.NoError(t, Heartbeat("u1"))

	// Inside the 30s window
	ids, err := OnlineUserIDs(beat.Add(29 * time.Second))
	assert.NoError(t, err)
	assert.Contains(t, ids, "u1")

	// Outside the window
	ids, err = OnlineUserIDs(beat.Add(31 * time.Second))
	assert.NoError(t, err)
	assert.NotContains(t, ids, "u1")
}

func TestHeartbeat_UpsertExtendsWindow(t *testing.T) {
	SetupTestDB()

	assert.NoError(t, Heartbeat("u1"))
	time.Sleep(5 * time.Millisecond)
	second := time.Now()
	assert.NoError(t, Heartbeat("u1"))

	// Still online 29s after the second beat
	ids, err := OnlineUserIDs(second.Add(29 * time.Second))
	assert.NoError(t, err)
	assert.Equal(t, []string{"u1"}, ids)

	online, err := IsOnline("u1", second)
	assert.NoError(t, err)
	assert.True(t, online)

	online, err = IsOnline("u1", second.Add(31*time.Second))
	assert.NoError(t, err)
	assert.False(t, online)
}

func TestOnlineUserIDs_UnknownUser(t *testing.T) {
	SetupTestDB()

	ids, err := OnlineUserIDs(time.Now())
	assert.NoError(t, err)
	assert.Empty(t, ids)

	online, err := IsOnline("never-seen", time.Now())
	assert.NoError(t, err)
	assert.False(t, online)
}
