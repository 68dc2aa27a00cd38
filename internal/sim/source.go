package sim

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source yields uniform draws in [0,1). It is the only randomness the
// simulation consumes.
type Source interface {
	Float64() float64
}

// MathSource is a seeded math/rand source safe for concurrent use.
type MathSource struct {
	mu   sync.Mutex
	r    *rand.Rand
	seed int64
}

func NewSource(seed int64) *MathSource {
	return &MathSource{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// NewRandomSource seeds from crypto/rand.
func NewRandomSource() (*MathSource, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSource(seed), nil
}

func (s *MathSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *MathSource) Seed() int64 { return s.seed }

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// DefaultFallback makes an exhausted Scripted source miss every
// probability roll below 0.999.
const DefaultFallback = 0.999

// Scripted replays a fixed sequence of draws, then returns Fallback.
type Scripted struct {
	mu       sync.Mutex
	values   []float64
	pos      int
	Fallback float64
}

func NewScripted(values ...float64) *Scripted {
	return &Scripted{values: values, Fallback: DefaultFallback}
}

func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.values) {
		return s.Fallback
	}
	v := s.values[s.pos]
	s.pos++
	return v
}

// Consumed is the number of scripted draws used so far.
func (s *Scripted) Consumed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Constant always returns the same draw.
type Constant float64

func (c Constant) Float64() float64 { return float64(c) }
