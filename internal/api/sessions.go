package api

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"lifepath/internal/game"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSession serves requests that carry no X-Session-Id.
const DefaultSession = "default"

// maxSessionID bounds the header value used as a save slot.
const maxSessionID = 64

// EngineFactory builds the engine for a session; the engine is loaded
// from its save before first use.
type EngineFactory func(session string) *game.Engine

// Sessions keeps the engines of recently active sessions. Evicted engines
// are rebuilt from their saves on next use.
type Sessions struct {
	mu      sync.Mutex
	cache   *lru.Cache[string, *game.Engine]
	factory EngineFactory
}

func NewSessions(size int, factory EngineFactory) (*Sessions, error) {
	if size <= 0 {
		size = 128
	}
	cache, err := lru.New[string, *game.Engine](size)
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	return &Sessions{cache: cache, factory: factory}, nil
}

// Get returns the engine for session, loading it on a cache miss.
func (s *Sessions) Get(ctx context.Context, session string) (*game.Engine, error) {
	session = SessionID(session)

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.cache.Get(session); ok {
		return e, nil
	}
	e := s.factory(session)
	if err := e.Load(ctx); err != nil {
		return nil, err
	}
	s.cache.Add(session, e)
	return e, nil
}

func (s *Sessions) Len() int {
	return s.cache.Len()
}

// SessionID normalizes a header value into a session key.
func SessionID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSession
	}
	if len(raw) > maxSessionID {
		raw = raw[:maxSessionID]
	}
	return raw
}
