package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for the unregister channel
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// WebSocket connection settings
const (
	// WSWriteWait is the time allowed to write a frame to the peer
	WSWriteWait = 10 * time.Second

	// WSPongWait is the time allowed to read the next pong from the peer
	WSPongWait = 60 * time.Second

	// WSPingPeriod must be less than WSPongWait
	WSPingPeriod = (WSPongWait * 9) / 10

	// WSReadLimit caps inbound frames; clients only send control frames
	WSReadLimit = 512
)

// Stream-level event types. Drop events are defined in the domain package.
const (
	// EventTypeConnected is sent once when a client subscribes
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters accepted by the stream endpoints
const (
	QueryParamTypes   = "types"
	QueryParamSession = "session_id"
)

// Log messages
const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgEventDropped       = "Broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgUpgradeFailed      = "WebSocket upgrade failed"
	LogMsgUnexpectedClose    = "WebSocket closed unexpectedly"
)
