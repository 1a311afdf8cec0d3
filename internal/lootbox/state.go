package lootbox

import (
	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
)

// State is the view state owned by one session: the drop on display, the rolling
// history, and whether a reveal is still in flight.
type State struct {
	Current       *domain.Skin       `json:"current,omitempty"`
	History       domain.DropHistory `json:"history"`
	Pending       bool               `json:"pending"`
	PendingDrawID string             `json:"pending_draw_id,omitempty"`
}

// NewState returns the state of a fresh session.
func NewState() State {
	return State{History: domain.DropHistory{}}
}

// Begin marks a draw as resolved but not yet revealed.
func Begin(s State, drawID string) State {
	s.Pending = true
	s.PendingDrawID = drawID
	return s
}

// Reveal puts skin on display and records it in the history.
func Reveal(s State, skin domain.Skin) State {
	current := skin
	s.Current = &current
	s.History = Record(s.History, skin)
	s.Pending = false
	s.PendingDrawID = ""
	return s
}

// Cancel abandons drawID's pending reveal. The drop is never shown or recorded.
func Cancel(s State, drawID string) State {
	if s.Pending && s.PendingDrawID == drawID {
		s.Pending = false
		s.PendingDrawID = ""
	}
	return s
}

// clone copies the state so callers outside the store can't reach shared memory.
func (s State) clone() State {
	out := s
	if s.Current != nil {
		current := *s.Current
		out.Current = &current
	}
	out.History = make(domain.DropHistory, len(s.History))
	copy(out.History, s.History)
	return out
}
