package save

import (
	"context"
	"log/slog"

	"lifepath/internal/model"
)

// Repository stores one game state per slot. Load reports false when the
// slot holds nothing usable.
type Repository interface {
	Load(ctx context.Context, slot string) (model.GameState, bool, error)
	Save(ctx context.Context, slot string, s model.GameState) error
	Clear(ctx context.Context, slot string) error
}

// decodeSlot turns unreadable saves into "no saved state" after logging them.
func decodeSlot(log *slog.Logger, slot string, data []byte) (model.GameState, bool) {
	s, err := Decode(data)
	if err != nil {
		log.Warn("discarding unreadable save", "slot", slot, "err", err)
		return model.GameState{}, false
	}
	return s, true
}

func orDefault(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
