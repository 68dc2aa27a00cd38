package telemetry

import "time"

type EventType string

const (
	EventLifeStarted EventType = "life_started"
	EventYearAged    EventType = "year_aged"
	EventDeath       EventType = "death"
	EventAction      EventType = "action"
	EventLifeReset   EventType = "life_reset"
	EventAchievement EventType = "achievement_unlocked"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
