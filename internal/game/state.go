package game

import (
	"context"

	"lifepath/internal/model"
)

// Repository persists the game state of one slot.
type Repository interface {
	Load(ctx context.Context, slot string) (model.GameState, bool, error)
	Save(ctx context.Context, slot string, s model.GameState) error
	Clear(ctx context.Context, slot string) error
}

// Snapshot copies s so callers cannot reach the engine's state.
func Snapshot(s model.GameState) model.GameState {
	if s.Character != nil {
		c := s.Character.Clone()
		s.Character = &c
	}
	s.Events = append([]model.Event(nil), s.Events...)
	if s.Events == nil {
		s.Events = []model.Event{}
	}
	return s
}
