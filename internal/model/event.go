package model

import (
	"fmt"
	"time"
)

type EventType string

const (
	EventPositive EventType = "positive"
	EventNegative EventType = "negative"
	EventNeutral  EventType = "neutral"
)

func (t EventType) Valid() bool {
	switch t {
	case EventPositive, EventNegative, EventNeutral:
		return true
	}
	return false
}

// Category groups events by life domain.
type Category string

const (
	CategoryGeneral      Category = "general"
	CategoryFamily       Category = "family"
	CategoryEducation    Category = "education"
	CategoryAchievement  Category = "achievement"
	CategoryCareer       Category = "career"
	CategoryRelationship Category = "relationship"
	CategoryTeen         Category = "teen"
	CategoryHealth       Category = "health"
	CategoryCriminal     Category = "criminal"
	CategoryPrison       Category = "prison"
	CategoryAssets       Category = "assets"
)

// Categories is the closed set of event categories, in display order.
var Categories = []Category{
	CategoryGeneral,
	CategoryFamily,
	CategoryEducation,
	CategoryAchievement,
	CategoryCareer,
	CategoryRelationship,
	CategoryTeen,
	CategoryHealth,
	CategoryCriminal,
	CategoryPrison,
	CategoryAssets,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label is the human-readable name for a category.
func (c Category) Label() string {
	switch c {
	case CategoryGeneral:
		return "Life"
	case CategoryFamily:
		return "Family"
	case CategoryEducation:
		return "School"
	case CategoryAchievement:
		return "Achievement"
	case CategoryCareer:
		return "Career"
	case CategoryRelationship:
		return "Love"
	case CategoryTeen:
		return "Teen Life"
	case CategoryHealth:
		return "Health"
	case CategoryCriminal:
		return "Crime"
	case CategoryPrison:
		return "Prison"
	case CategoryAssets:
		return "Assets"
	}
	return fmt.Sprintf("unknown(%s)", string(c))
}

// Event is one immutable entry in the life log.
type Event struct {
	ID                   string    `json:"id"`
	Age                  int       `json:"age"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	StatChanges          Delta     `json:"statChanges,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
	Type                 EventType `json:"type"`
	Category             Category  `json:"category"`
	FamilyMemberInvolved string    `json:"familyMemberInvolved,omitempty"`
}
