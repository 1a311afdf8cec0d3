package lootbox

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
)

// session serializes updates to one browser session's state.
type session struct {
	mu    sync.Mutex
	state State
}

// sessionStore keeps view state in an LRU with time-based expiration.
// Sessions are never persisted; an evicted session is simply gone.
type sessionStore struct {
	lru *expirable.LRU[string, *session]
}

// newSessionStore creates a store holding at most size sessions, each expiring ttl after last use.
func newSessionStore(size int, ttl time.Duration) *sessionStore {
	if size <= 0 {
		size = DefaultSessionCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionStore{
		lru: expirable.NewLRU[string, *session](size, nil, ttl),
	}
}

// create registers a new empty session and returns its ID.
func (s *sessionStore) create() string {
	id := uuid.NewString()
	s.lru.Add(id, &session{state: NewState()})
	return id
}

// get returns a copy of the session's state.
func (s *sessionStore) get(id string) (State, error) {
	sess, ok := s.lru.Get(id)
	if !ok {
		return State{}, domain.ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state.clone(), nil
}

// update is the single mutation point for session state. fn runs under the session lock;
// if it returns an error the state is left unchanged. Touching a session refreshes its TTL.
func (s *sessionStore) update(id string, fn func(State) (State, error)) (State, error) {
	sess, ok := s.lru.Get(id)
	if !ok {
		return State{}, domain.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	next, err := fn(sess.state)
	if err != nil {
		return sess.state.clone(), err
	}
	sess.state = next
	s.lru.Add(id, sess)

	return next.clone(), nil
}

// len returns the number of live sessions.
func (s *sessionStore) len() int {
	return s.lru.Len()
}
