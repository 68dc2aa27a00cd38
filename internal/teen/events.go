package teen

import (
	"lifepath/internal/model"
	"lifepath/internal/sim"
)

// Table builds the teenage event table. Risky events scale with the risk
// meter and Peer Pressure decides its reputation swing up front.
func Table(env sim.Env, c model.Character) []sim.Template {
	risk := 1 + float64(c.RiskMeter)/100
	swing := 2
	if env.Chance(0.5) {
		swing = -2
	}
	return []sim.Template{
		{
			Title:       "Peer Pressure",
			Description: "Some friends tried to pressure you into doing something you weren't comfortable with.",
			Changes:     model.Delta{model.StatHappiness: -3, model.StatReputation: swing},
			Type:        model.EventNegative,
			Probability: 0.08 * risk,
		},
		{
			Title:       "School Dance",
			Description: "You went to the school dance and had a great time!",
			Changes:     model.Delta{model.StatHappiness: 8, model.StatReputation: 3},
			Type:        model.EventPositive,
			Probability: 0.06,
		},
		{
			Title:       "Got in Trouble",
			Description: "You got in trouble at school for talking back to a teacher.",
			Changes:     model.Delta{model.StatHappiness: -5, model.StatReputation: -8},
			Type:        model.EventNegative,
			Probability: 0.1 * risk,
		},
		{
			Title:       "Popular Crowd",
			Description: "You started hanging out with the popular kids at school.",
			Changes:     model.Delta{model.StatHappiness: 6, model.StatReputation: 10, model.StatLooks: 2},
			Type:        model.EventPositive,
			Probability: 0.05,
		},
	}
}

// Generate rolls the teenage table from age 13. The returned event's deltas
// are not yet applied.
func Generate(env sim.Env, c model.Character) *model.Event {
	if c.Age < MinDatingAge {
		return nil
	}
	table := Table(env, c)
	for i := range table {
		table[i].Category = model.CategoryTeen
	}
	t, ok := sim.Roll(env, c, table)
	if !ok {
		return nil
	}
	ev := t.Materialize(env, c.Age)
	return &ev
}
