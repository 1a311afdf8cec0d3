package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readSSEEvent reads lines until a complete event block and returns its event name and data.
func readSSEEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if name != "" {
				return name, data
			}
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=drop.revealed&session_id=s1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	name, data := readSSEEvent(t, reader)
	require.Equal(t, EventTypeConnected, name)

	var connected struct {
		Payload ConnectedPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal([]byte(data), &connected))
	assert.Equal(t, []string{"drop.revealed"}, connected.Payload.Filters)
	assert.Equal(t, "s1", connected.Payload.SessionID)

	waitForClients(t, hub, 1)
	hub.Broadcast("drop.resolved", scopedPayload{Session: "s1"})
	hub.Broadcast("drop.revealed", scopedPayload{Session: "s1"})

	name, data = readSSEEvent(t, reader)
	assert.Equal(t, "drop.revealed", name)
	assert.Contains(t, data, `"session":"s1"`)
}

func TestHandler_DisconnectUnregisters(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	_, _ = readSSEEvent(t, bufio.NewReader(resp.Body))
	waitForClients(t, hub, 1)

	cancel()
	_ = resp.Body.Close()
	waitForClients(t, hub, 0)
}

func TestHandler_StreamEndsWhenHubAlreadyStopped(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream stayed open after hub stop")
	}
}

func TestWebSocketHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(WebSocketHandler(hub))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?session_id=s1"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var evt Event
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, EventTypeConnected, evt.Type)

	waitForClients(t, hub, 1)
	hub.Broadcast("drop.revealed", scopedPayload{Session: "other"})
	hub.Broadcast("drop.revealed", scopedPayload{Session: "s1"})

	var got struct {
		Type    string        `json:"type"`
		Payload scopedPayload `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "drop.revealed", got.Type)
	assert.Equal(t, "s1", got.Payload.Session)
}

func TestWebSocketHandler_ClientCloseUnregisters(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(WebSocketHandler(hub))
	defer srv.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	var evt Event
	require.NoError(t, conn.ReadJSON(&evt))
	waitForClients(t, hub, 1)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()

	waitForClients(t, hub, 0)
}

func TestWebSocketHandler_RejectsPlainHTTP(t *testing.T) {
	hub := startHub(t)
	rec := httptest.NewRecorder()
	WebSocketHandler(hub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, hub.ClientCount())
}
