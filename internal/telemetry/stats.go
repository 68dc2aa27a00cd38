package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period          string            `json:"period"`
	EventCounts     map[EventType]int `json:"event_counts"`
	LivesStarted    int               `json:"lives_started"`
	YearsSimulated  int               `json:"years_simulated"`
	Deaths          int               `json:"deaths"`
	AverageLifespan float64           `json:"average_lifespan"`
	DeathsByCause   map[string]int    `json:"deaths_by_cause"`
	ActionsByName   map[string]int    `json:"actions_by_name"`
	FailedActions   int               `json:"failed_actions"`
	Achievements    map[string]int    `json:"achievements"`
}

// CalculateStats aggregates life telemetry since a point in time.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:        since.Format("2006-01-02"),
		EventCounts:   make(map[EventType]int),
		DeathsByCause: make(map[string]int),
		ActionsByName: make(map[string]int),
		Achievements:  make(map[string]int),
	}

	totalAge := 0
	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventLifeStarted:
			stats.LivesStarted++
		case EventYearAged:
			stats.YearsSimulated++
		case EventDeath:
			stats.Deaths++
			if cause, ok := metadata["cause"].(string); ok {
				stats.DeathsByCause[cause]++
			}
			// JSON numbers decode as float64.
			if age, ok := metadata["age"].(float64); ok {
				totalAge += int(age)
			}
		case EventAction:
			if name, ok := metadata["action"].(string); ok {
				stats.ActionsByName[name]++
			}
			if outcome, ok := metadata["outcome"].(string); ok && outcome != OutcomeOK {
				stats.FailedActions++
			}
		case EventAchievement:
			if id, ok := metadata["achievement"].(string); ok {
				stats.Achievements[id]++
			}
		}
	}

	if stats.Deaths > 0 {
		stats.AverageLifespan = float64(totalAge) / float64(stats.Deaths)
	}

	return stats, nil
}
