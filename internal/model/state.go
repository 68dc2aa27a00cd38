package model

// Tab is the presentation tab remembered across sessions.
type Tab string

const (
	TabStats         Tab = "stats"
	TabFamily        Tab = "family"
	TabEducation     Tab = "education"
	TabCareer        Tab = "career"
	TabRelationships Tab = "relationships"
	TabChildren      Tab = "children"
	TabHealth        Tab = "health"
	TabCriminal      Tab = "criminal"
	TabAssets        Tab = "assets"
	TabAchievements  Tab = "achievements"
)

var Tabs = []Tab{
	TabStats,
	TabFamily,
	TabEducation,
	TabCareer,
	TabRelationships,
	TabChildren,
	TabHealth,
	TabCriminal,
	TabAssets,
	TabAchievements,
}

func (t Tab) Valid() bool {
	for _, known := range Tabs {
		if t == known {
			return true
		}
	}
	return false
}

type Settings struct {
	DarkMode         bool `json:"darkMode"`
	AutoSave         bool `json:"autoSave"`
	Notifications    bool `json:"notifications"`
	PregnancyEnabled bool `json:"pregnancyEnabled"`
}

func DefaultSettings() Settings {
	return Settings{
		AutoSave:      true,
		Notifications: true,
	}
}

// GameState is everything one save slot holds.
type GameState struct {
	Character  *Character `json:"character"`
	Events     []Event    `json:"events"`
	IsPlaying  bool       `json:"isPlaying"`
	CurrentTab Tab        `json:"currentTab"`
	Settings   Settings   `json:"settings"`
}

func NewGameState() GameState {
	return GameState{
		Events:     []Event{},
		CurrentTab: TabStats,
		Settings:   DefaultSettings(),
	}
}

// Phase is the life state machine position.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseAlive      Phase = "alive"
	PhaseDeceased   Phase = "deceased"
)

func (s GameState) Phase() Phase {
	switch {
	case s.Character == nil:
		return PhaseNotStarted
	case s.Character.IsAlive:
		return PhaseAlive
	default:
		return PhaseDeceased
	}
}
