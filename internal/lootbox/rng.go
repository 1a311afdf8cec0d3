package lootbox

import (
	"math/rand/v2"
	"sync"
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalRNG struct{}

func (globalRNG) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// DefaultRandomSource returns a source backed by the runtime's global generator.
func DefaultRandomSource() RandomSource { return globalRNG{} }

// seededRNG is reproducible for a given seed, which tests and simulations rely on.
// *rand.Rand is not safe for concurrent use, so access is serialized.
type seededRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRandomSource returns a deterministic source.
func NewSeededRandomSource(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))} //nolint:gosec // reproducible simulation
}

func (s *seededRNG) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// sequenceRNG replays fixed values, cycling when exhausted.
type sequenceRNG struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequenceRandomSource returns a source that yields values in order, wrapping around.
// Useful to force specific tiers and indices.
func NewSequenceRandomSource(values ...float64) RandomSource {
	return &sequenceRNG{values: values}
}

func (s *sequenceRNG) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
