package sse

import "strings"

// Event represents an event sent to a stream client
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ConnectedPayload is the payload of the first event every client receives
type ConnectedPayload struct {
	ClientID  string   `json:"client_id"`
	Filters   []string `json:"filters,omitempty"`
	SessionID string   `json:"session_id,omitempty"`
}

// SessionScoped is implemented by payloads that belong to a single lootbox session.
// Clients subscribed with a session ID only receive scoped payloads for that session.
type SessionScoped interface {
	EventSessionID() string
}

// Subscription describes what a client wants to receive. Zero value means everything.
type Subscription struct {
	Types     []string
	SessionID string
}

// ParseTypes splits a comma separated types query value, dropping blanks.
func ParseTypes(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
