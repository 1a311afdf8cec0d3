package sse

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The feed is read-only and carries no credentials, so any origin may subscribe
	CheckOrigin: func(*http.Request) bool { return true },
}

// WebSocketHandler serves the same feed as Handler over a WebSocket.
// Events are written as JSON text frames; inbound data frames are ignored.
func WebSocketHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		// Parse before upgrading; the request is hijacked afterwards
		sub := subscriptionFromQuery(r.URL.Query().Get)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written an HTTP error
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}

		client := hub.Register(sub)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", "websocket",
			"filters", sub.Types,
			"session_id", sub.SessionID)

		done := make(chan struct{})
		go wsReadLoop(conn, done, log)
		wsWriteLoop(conn, client, sub, done, log)

		hub.Unregister(client.ID)
		log.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", "websocket")
	}
}

// wsReadLoop keeps pong handling alive and notices when the peer goes away.
func wsReadLoop(conn *websocket.Conn, done chan<- struct{}, log *slog.Logger) {
	defer close(done)

	conn.SetReadLimit(WSReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(WSPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(WSPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug(LogMsgUnexpectedClose, "error", err)
			}
			return
		}
	}
}

func wsWriteLoop(conn *websocket.Conn, client *Client, sub Subscription, done <-chan struct{}, log *slog.Logger) {
	ticker := time.NewTicker(WSPingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	write := func(event Event) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(WSWriteWait))
		if err := conn.WriteJSON(event); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return false
		}
		return true
	}

	if !write(connectedEvent(client, sub)) {
		return
	}

	for {
		select {
		case <-done:
			return

		case event, ok := <-client.EventChannel:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(WSWriteWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			if !write(event) {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(WSWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
