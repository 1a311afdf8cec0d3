package sse

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/metrics"
)

// Client represents a connected stream client
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events, otherwise only specified types
	SessionID    string          // empty means all sessions
}

func (c *Client) wants(event Event) bool {
	if c.EventFilter != nil && !c.EventFilter[event.Type] {
		return false
	}
	if c.SessionID == "" {
		return true
	}
	scoped, ok := event.Payload.(SessionScoped)
	return !ok || scoped.EventSessionID() == c.SessionID
}

// Hub manages stream client connections and event broadcasting.
// Both the SSE and WebSocket endpoints subscribe through the same hub.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopped    bool // guarded by mu; set once Stop has closed every client
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop gracefully shuts down the hub and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.stopped = true
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		metrics.StreamClients.Sub(float64(len(h.clients)))
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
				metrics.StreamClients.Dec()
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event) {
					continue
				}
				// Slow clients miss events rather than stall the hub
				select {
				case client.EventChannel <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a new client to the hub
func (h *Hub) Register(sub Subscription) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
		SessionID:    sub.SessionID,
	}

	if len(sub.Types) > 0 {
		client.EventFilter = make(map[string]bool, len(sub.Types))
		for _, t := range sub.Types {
			client.EventFilter[t] = true
		}
	}

	// A client registered after Stop gets an already closed channel.
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(client.EventChannel)
		return client
	}
	h.clients[client.ID] = client
	metrics.StreamClients.Inc()
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast sends an event to all interested clients. It never blocks; when the
// buffer is full the event is dropped.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
		metrics.EventsPublished.WithLabelValues(eventType).Inc()
	default:
		logger.Warn(LogMsgEventDropped, "type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	var b strings.Builder
	b.WriteString("id: " + event.ID + "\n")
	b.WriteString("event: " + event.Type + "\n")
	b.WriteString("data: " + string(data) + "\n\n")

	return []byte(b.String()), nil
}

func connectedEvent(client *Client, sub Subscription) Event {
	return Event{
		ID:        client.ID,
		Type:      EventTypeConnected,
		Timestamp: time.Now().Unix(),
		Payload: ConnectedPayload{
			ClientID:  client.ID,
			Filters:   sub.Types,
			SessionID: sub.SessionID,
		},
	}
}

func subscriptionFromQuery(get func(string) string) Subscription {
	return Subscription{
		Types:     ParseTypes(get(QueryParamTypes)),
		SessionID: get(QueryParamSession),
	}
}
