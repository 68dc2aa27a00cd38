package career

import (
	"lifepath/internal/model"
	"lifepath/internal/sim"
)

type jobEvent struct {
	sim.Template
	Effect func(model.Character) model.Character
}

var jobEvents = []jobEvent{
	{
		Template: sim.Template{
			Title:       "Got a Raise",
			Description: "Your hard work paid off! You received an unexpected raise.",
			Changes:     model.Delta{model.StatHappiness: 8, model.StatMoney: 1500},
			Type:        model.EventPositive,
			Probability: 0.05,
		},
		Effect: func(c model.Character) model.Character {
			salary := c.Career.Salary
			if salary == 0 {
				salary = DefaultSalary
			}
			c.Career.Salary = salary * 11 / 10
			return c
		},
	},
	{
		Template: sim.Template{
			Title:       "Workplace Conflict",
			Description: "You had a disagreement with a coworker that affected your mood.",
			Changes:     model.Delta{model.StatHappiness: -6, model.StatReputation: -3},
			Type:        model.EventNegative,
			Probability: 0.08,
		},
	},
	{
		Template: sim.Template{
			Title:       "Completed Big Project",
			Description: "You successfully completed a major project at work!",
			Changes:     model.Delta{model.StatHappiness: 6, model.StatReputation: 5},
			Type:        model.EventPositive,
			Probability: 0.06,
		},
		Effect: func(c model.Character) model.Character {
			c.Career.JobPerformance = model.Clamp(c.Career.JobPerformance + 10)
			return c
		},
	},
	{
		Template: sim.Template{
			Title:       "Work Stress",
			Description: "The pressure at work is getting to you.",
			Changes:     model.Delta{model.StatHappiness: -5, model.StatHealth: -3},
			Type:        model.EventNegative,
			Probability: 0.1,
		},
	},
	{
		Template: sim.Template{
			Title:       "Job Offer from Rival Company",
			Description: "A competing company offered you a position with 20% higher salary!",
			Changes:     model.Delta{model.StatHappiness: 10},
			Type:        model.EventPositive,
			Probability: 0.03,
		},
	},
}

// Generate rolls the workplace table for the employed, scaled by
// performance/50. The side effect of the chosen event is applied to the
// returned character; its stat deltas are not.
func Generate(env sim.Env, c model.Character) (model.Character, *model.Event) {
	if !c.Career.HasJob {
		return c, nil
	}
	scale := float64(c.Career.JobPerformance) / 50
	hit, ok := sim.RollEach(env, jobEvents, func(e jobEvent) float64 { return e.Probability * scale })
	if !ok {
		return c, nil
	}
	if hit.Effect != nil {
		c = hit.Effect(c)
	}
	hit.Category = model.CategoryCareer
	ev := hit.Materialize(env, c.Age)
	return c, &ev
}
