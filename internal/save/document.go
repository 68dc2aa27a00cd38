// Package save persists game state as versioned JSON documents and
// upgrades old documents on load.
package save

import (
	"encoding/json"
	"errors"
	"fmt"

	"lifepath/internal/model"
)

// CurrentVersion is the schema version written by Encode.
const CurrentVersion = 3

// DefaultSlot is used when a caller has no slot of its own.
const DefaultSlot = "default"

var (
	ErrCorrupt       = errors.New("save: corrupt document")
	ErrFutureVersion = errors.New("save: document from a newer version")
)

type document struct {
	SchemaVersion int              `json:"schemaVersion"`
	Character     *model.Character `json:"character"`
	Events        []model.Event    `json:"events"`
	IsPlaying     bool             `json:"isPlaying"`
	CurrentTab    model.Tab        `json:"currentTab"`
	Settings      model.Settings   `json:"settings"`
}

// Encode writes s at the current schema version.
func Encode(s model.GameState) ([]byte, error) {
	if s.Events == nil {
		s.Events = []model.Event{}
	}
	return json.Marshal(document{
		SchemaVersion: CurrentVersion,
		Character:     s.Character,
		Events:        s.Events,
		IsPlaying:     s.IsPlaying,
		CurrentTab:    s.CurrentTab,
		Settings:      s.Settings,
	})
}

// Decode reads a document of any known version and upgrades it.
func Decode(data []byte) (model.GameState, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.GameState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if raw == nil {
		return model.GameState{}, fmt.Errorf("%w: empty document", ErrCorrupt)
	}

	version, err := schemaVersion(raw)
	if err != nil {
		return model.GameState{}, err
	}
	if version > CurrentVersion {
		return model.GameState{}, fmt.Errorf("%w: version %d", ErrFutureVersion, version)
	}
	raw = Migrate(raw, version)

	upgraded, err := json.Marshal(raw)
	if err != nil {
		return model.GameState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	var doc document
	if err := json.Unmarshal(upgraded, &doc); err != nil {
		return model.GameState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	s := model.NewGameState()
	s.Character = doc.Character
	s.IsPlaying = doc.IsPlaying
	s.Settings = doc.Settings
	if doc.Events != nil {
		s.Events = doc.Events
	}
	if doc.CurrentTab.Valid() {
		s.CurrentTab = doc.CurrentTab
	}
	return s, nil
}

func schemaVersion(raw map[string]any) (int, error) {
	v, ok := raw["schemaVersion"]
	if !ok || v == nil {
		return 0, nil
	}
	f, ok := v.(float64)
	if !ok || f < 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("%w: bad schemaVersion %v", ErrCorrupt, v)
	}
	return int(f), nil
}
