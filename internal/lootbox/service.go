package lootbox

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/metrics"
)

var errStaleReveal = errors.New("reveal no longer pending")

// DrawResult is what one lootbox open produced. Skin is nil when the rolled tier was empty.
type DrawResult struct {
	DrawID    string        `json:"draw_id"`
	SessionID string        `json:"session_id"`
	Resolved  bool          `json:"resolved"`
	Rarity    domain.Rarity `json:"rarity"`
	Skin      *domain.Skin  `json:"skin,omitempty"`
	Revealed  bool          `json:"revealed"`
	RevealAt  *time.Time    `json:"reveal_at,omitempty"`
}

// DropEvent is the payload broadcast on drop.resolved and drop.revealed.
type DropEvent struct {
	DrawID    string        `json:"draw_id"`
	SessionID string        `json:"session_id"`
	Rarity    domain.Rarity `json:"rarity"`
	Skin      domain.Skin   `json:"skin"`
	RevealAt  *time.Time    `json:"reveal_at,omitempty"`
}

// EventSessionID scopes the event to its session for per-session feeds.
func (e DropEvent) EventSessionID() string { return e.SessionID }

// Publisher pushes drop events to live feeds.
type Publisher interface {
	Broadcast(eventType string, payload interface{})
}

type noopPublisher struct{}

func (noopPublisher) Broadcast(string, interface{}) {}

// Service defines the lootbox opening interface
type Service interface {
	NewSession(ctx context.Context) (string, error)
	Open(ctx context.Context, sessionID string) (*DrawResult, error)
	State(ctx context.Context, sessionID string) (State, error)
	Pool() domain.SkinPool
	Odds() domain.ProbabilityTable
	Shutdown(ctx context.Context) error
}

// Config tunes a Service. Zero values fall back to defaults.
type Config struct {
	RevealDelay      time.Duration
	SessionCacheSize int
	SessionTTL       time.Duration
	Table            domain.ProbabilityTable
	RNG              RandomSource
}

type service struct {
	pool        domain.SkinPool
	table       domain.ProbabilityTable
	rnd         RandomSource
	publisher   Publisher
	revealDelay time.Duration
	sessions    *sessionStore

	mu       sync.Mutex
	timers   map[string]*time.Timer // drawID -> pending reveal
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewService creates a lootbox service over a pool that is already fully built.
// The pool must not be modified afterwards.
func NewService(pool domain.SkinPool, publisher Publisher, cfg Config) (Service, error) {
	table := cfg.Table
	if table == nil {
		table = domain.DefaultProbabilityTable()
	}
	if err := table.Validate(); err != nil {
		logger.Error(LogMsgInvalidOddsTable, LogFieldError, err)
		return nil, err
	}

	if pool == nil {
		pool = domain.NewSkinPool()
	}
	if publisher == nil {
		publisher = noopPublisher{}
	}
	rng := cfg.RNG
	if rng == nil {
		rng = DefaultRandomSource()
	}

	return &service{
		pool:        pool,
		table:       table,
		rnd:         rng,
		publisher:   publisher,
		revealDelay: cfg.RevealDelay,
		sessions:    newSessionStore(cfg.SessionCacheSize, cfg.SessionTTL),
		timers:      make(map[string]*time.Timer),
		shutdown:    make(chan struct{}),
	}, nil
}

// NewSession starts an empty session and returns its ID.
func (s *service) NewSession(ctx context.Context) (string, error) {
	id := s.sessions.create()
	metrics.SessionsCreated.Inc()
	logger.FromContext(ctx).Debug(LogMsgSessionCreated, LogFieldSession, id)
	return id, nil
}

// Open draws a skin for the session. The outcome is fixed here; a configured reveal delay
// only postpones when it lands in the session's view state.
func (s *service) Open(ctx context.Context, sessionID string) (*DrawResult, error) {
	log := logger.FromContext(ctx)

	result := &DrawResult{
		DrawID:    uuid.NewString(),
		SessionID: sessionID,
	}
	var drawn domain.Skin

	_, err := s.sessions.update(sessionID, func(st State) (State, error) {
		if st.Pending {
			return st, domain.ErrDrawPending
		}
		if s.stopped() {
			return st, domain.ErrShuttingDown
		}

		skin, rarity, ok := DrawWithTier(s.pool, s.table, s.rnd)
		result.Rarity = rarity
		if !ok {
			return st, nil
		}

		drawn = skin
		result.Resolved = true
		result.Skin = &skin

		if s.revealDelay <= 0 {
			result.Revealed = true
			return Reveal(st, skin), nil
		}

		revealAt := time.Now().Add(s.revealDelay)
		result.RevealAt = &revealAt
		return Begin(st, result.DrawID), nil
	})
	if err != nil {
		return nil, fmt.Errorf("open lootbox for session %s: %w", sessionID, err)
	}

	if !result.Resolved {
		metrics.EmptyDrawsTotal.WithLabelValues(string(result.Rarity)).Inc()
		log.Info(LogMsgDrawEmpty, LogFieldSession, sessionID, LogFieldRarity, result.Rarity)
		return result, nil
	}

	metrics.DrawsTotal.WithLabelValues(string(result.Rarity)).Inc()
	log.Info(LogMsgDrawResolved,
		LogFieldSession, sessionID,
		LogFieldDraw, result.DrawID,
		LogFieldRarity, result.Rarity,
		LogFieldSkin, drawn.Name,
		LogFieldWeapon, drawn.Weapon)

	evt := DropEvent{
		DrawID:    result.DrawID,
		SessionID: sessionID,
		Rarity:    result.Rarity,
		Skin:      drawn,
		RevealAt:  result.RevealAt,
	}
	s.publisher.Broadcast(domain.EventDropResolved, evt)

	if result.Revealed {
		metrics.RevealsTotal.Inc()
		s.publisher.Broadcast(domain.EventDropRevealed, evt)
		return result, nil
	}

	if !s.scheduleReveal(ctx, evt) {
		// Shutdown won the race after the draw was committed
		_, _ = s.sessions.update(sessionID, func(st State) (State, error) {
			return Cancel(st, result.DrawID), nil
		})
		return nil, fmt.Errorf("open lootbox for session %s: %w", sessionID, domain.ErrShuttingDown)
	}
	return result, nil
}

// State returns a copy of the session's view state.
func (s *service) State(_ context.Context, sessionID string) (State, error) {
	st, err := s.sessions.get(sessionID)
	if err != nil {
		return State{}, fmt.Errorf("get state for session %s: %w", sessionID, err)
	}
	return st, nil
}

// Pool returns a copy of the skin pool.
func (s *service) Pool() domain.SkinPool {
	out := make(domain.SkinPool, len(s.pool))
	for rarity, bucket := range s.pool {
		cp := make([]domain.Skin, len(bucket))
		copy(cp, bucket)
		out[rarity] = cp
	}
	return out
}

// Odds returns a copy of the probability table.
func (s *service) Odds() domain.ProbabilityTable {
	out := make(domain.ProbabilityTable, len(s.table))
	copy(out, s.table)
	return out
}

// stopped reports whether Shutdown has begun. No new draw may start once it has,
// since its reveal could never be scheduled.
func (s *service) stopped() bool {
	select {
	case <-s.shutdown:
		return true
	default:
		return false
	}
}

// scheduleReveal arms the reveal timer. It returns false if the service is already shut down.
func (s *service) scheduleReveal(ctx context.Context, evt DropEvent) bool {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgRevealScheduled, LogFieldSession, evt.SessionID, LogFieldDraw, evt.DrawID, LogFieldDelay, s.revealDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped() {
		return false
	}

	s.timers[evt.DrawID] = time.AfterFunc(s.revealDelay, func() {
		s.mu.Lock()
		select {
		case <-s.shutdown:
			s.mu.Unlock()
			return
		default:
		}
		delete(s.timers, evt.DrawID)
		s.wg.Add(1)
		s.mu.Unlock()
		defer s.wg.Done()

		s.reveal(evt)
	})
	return true
}

func (s *service) reveal(evt DropEvent) {
	_, err := s.sessions.update(evt.SessionID, func(st State) (State, error) {
		if !st.Pending || st.PendingDrawID != evt.DrawID {
			return st, errStaleReveal
		}
		return Reveal(st, evt.Skin), nil
	})
	if err != nil {
		logger.Warn(LogMsgRevealFailed, LogFieldSession, evt.SessionID, LogFieldDraw, evt.DrawID, LogFieldError, err)
		return
	}

	metrics.RevealsTotal.Inc()
	logger.Debug(LogMsgDropRevealed, LogFieldSession, evt.SessionID, LogFieldDraw, evt.DrawID)
	s.publisher.Broadcast(domain.EventDropRevealed, evt)
}

// Shutdown cancels pending reveals and waits for any in-flight reveal to finish.
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	s.mu.Lock()
	select {
	case <-s.shutdown:
		s.mu.Unlock()
		return nil
	default:
	}
	close(s.shutdown)
	for drawID, timer := range s.timers {
		timer.Stop()
		log.Info(LogMsgCancelledReveal, LogFieldDraw, drawID)
	}
	s.timers = make(map[string]*time.Timer)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
