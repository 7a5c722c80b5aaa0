package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soullink-tracker/realtime"
	"soullink-tracker/testutil"
)

// Mutations broadcast only after they succeeded: a created player
// reaches every subscriber, a rejected duplicate reaches nobody.
func TestMutationsBroadcastOnSuccessOnly(t *testing.T) {
	_, r := testutil.NewRouter(t)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Give the hub a moment to register the client.
	time.Sleep(50 * time.Millisecond)

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/players", gin.H{"name": "Ash"})
	require.Equal(t, http.StatusCreated, w.Code)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event realtime.Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, realtime.EventPlayerAdded, event.Event)

	data, ok := event.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ash", data["name"])

	w = testutil.DoJSON(t, r, http.MethodPost, "/api/players", gin.H{"name": "Ash"})
	require.Equal(t, http.StatusConflict, w.Code)

	// The rejected duplicate must not produce an event.
	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "received an event for a failed mutation")
}
