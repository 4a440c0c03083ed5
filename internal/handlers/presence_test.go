package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHeartbeat_AnonymousIsNoOp(t *testing.T) {
	SetupTestDB()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/presence/heartbeat", nil)

	Heartbeat(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHeartbeatThenOnlineUsers(t *testing.T) {
	SetupTestDB()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/presence/heartbeat", nil)
	c.Set("userId", "u1")

	Heartbeat(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/presence/online", nil)

	OnlineUsers(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		OnlineUserIDs []string `json:"onlineUserIds"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.OnlineUserIDs, "u1")
}
