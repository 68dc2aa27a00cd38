package sim

import "lifepath/internal/model"

// Template is one entry of a domain event table.
type Template struct {
	Title       string
	Description string
	Changes     model.Delta
	Type        model.EventType
	Category    model.Category
	MinAge      int
	MaxAge      int // 0 means no upper bound
	Probability float64
	When        func(model.Character) bool
}

// Eligible reports whether c's age and state admit the template.
func (t Template) Eligible(c model.Character) bool {
	if c.Age < t.MinAge {
		return false
	}
	if t.MaxAge > 0 && c.Age > t.MaxAge {
		return false
	}
	return t.When == nil || t.When(c)
}

// Materialize turns the template into an event at age.
func (t Template) Materialize(e Env, age int) model.Event {
	return e.Event(age, t.Title, t.Description, t.Changes, t.Type, t.Category)
}

// Roll keeps the eligible templates, rolls each one independently and
// picks uniformly among the hits. No hit is a valid outcome.
func Roll(e Env, c model.Character, table []Template) (Template, bool) {
	eligible := make([]Template, 0, len(table))
	for _, t := range table {
		if t.Eligible(c) {
			eligible = append(eligible, t)
		}
	}
	return RollEach(e, eligible, func(t Template) float64 { return t.Probability })
}

// RollEach draws once per item against prob and picks one of the hits.
func RollEach[T any](e Env, items []T, prob func(T) float64) (T, bool) {
	var hits []T
	for _, it := range items {
		if e.Chance(prob(it)) {
			hits = append(hits, it)
		}
	}
	if len(hits) == 0 {
		var zero T
		return zero, false
	}
	return Pick(e, hits), true
}
