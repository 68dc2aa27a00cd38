package save

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"lifepath/internal/model"
)

// FileRepo keeps one JSON document per slot in a directory.
type FileRepo struct {
	mu  sync.Mutex
	dir string
	log *slog.Logger
}

func NewFileRepo(dataDir string, log *slog.Logger) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileRepo{dir: dataDir, log: orDefault(log)}, nil
}

func slotName(slot string) string {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return DefaultSlot
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, slot)
}

func (r *FileRepo) path(slot string) string {
	return filepath.Join(r.dir, slotName(slot)+".json")
}

func (r *FileRepo) Load(ctx context.Context, slot string) (model.GameState, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.GameState{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return model.GameState{}, false, nil
		}
		return model.GameState{}, false, err
	}
	s, ok := decodeSlot(r.log, slot, b)
	return s, ok, nil
}

// Save replaces the slot atomically: the document is written to a temp
// file in the same directory and renamed over the old one.
func (r *FileRepo) Save(ctx context.Context, slot string, s model.GameState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := Encode(s)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(r.dir, slotName(slot)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}
	return os.Rename(tmp.Name(), r.path(slot))
}

func (r *FileRepo) Clear(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path(slot)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
