package save

import (
	"context"
	"log/slog"
	"sync"

	"lifepath/internal/model"
)

// MemoryRepo keeps encoded documents in memory.
type MemoryRepo struct {
	mu    sync.RWMutex
	slots map[string][]byte
	log   *slog.Logger
}

func NewMemoryRepo(log *slog.Logger) *MemoryRepo {
	return &MemoryRepo{
		slots: map[string][]byte{},
		log:   orDefault(log),
	}
}

func (r *MemoryRepo) Load(ctx context.Context, slot string) (model.GameState, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.GameState{}, false, err
	}
	r.mu.RLock()
	data, ok := r.slots[slot]
	r.mu.RUnlock()
	if !ok {
		return model.GameState{}, false, nil
	}
	s, ok := decodeSlot(r.log, slot, data)
	return s, ok, nil
}

func (r *MemoryRepo) Save(ctx context.Context, slot string, s model.GameState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(s)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.slots[slot] = data
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepo) Clear(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.slots, slot)
	r.mu.Unlock()
	return nil
}

// Put stores raw bytes in a slot, bypassing Encode.
func (r *MemoryRepo) Put(slot string, data []byte) {
	r.mu.Lock()
	r.slots[slot] = append([]byte(nil), data...)
	r.mu.Unlock()
}
