// Package events holds the general life event table rolled every year.
package events

import (
	"lifepath/internal/model"
	"lifepath/internal/sim"
)

func general(title, description string, changes model.Delta, typ model.EventType, minAge, maxAge int, p float64) sim.Template {
	return sim.Template{
		Title:       title,
		Description: description,
		Changes:     changes,
		Type:        typ,
		Category:    model.CategoryGeneral,
		MinAge:      minAge,
		MaxAge:      maxAge,
		Probability: p,
	}
}

func employed(c model.Character) bool { return c.Career.HasJob }

func notEnrolled(c model.Character) bool { return !c.College.IsEnrolled }

func when(t sim.Template, pred func(model.Character) bool) sim.Template {
	t.When = pred
	return t
}

// Table is the general event table, grouped by life stage.
var Table = []sim.Template{
	// childhood
	general("Caught a Cold", "You came down with a nasty cold and had to stay home from school for a week.",
		model.Delta{model.StatHealth: -5, model.StatHappiness: -3}, model.EventNegative, 1, 12, 0.15),
	general("Made a Best Friend", "You met someone special at school who became your best friend!",
		model.Delta{model.StatHappiness: 8, model.StatSmarts: 2}, model.EventPositive, 3, 12, 0.12),
	general("Won a School Competition", "Your hard work paid off when you won first place in the school science fair!",
		model.Delta{model.StatSmarts: 6, model.StatHappiness: 5}, model.EventPositive, 6, 12, 0.08),
	general("Got into a Fight", "You got into a playground fight and both of you got in trouble.",
		model.Delta{model.StatHappiness: -4, model.StatHealth: -3}, model.EventNegative, 4, 12, 0.1),
	general("Family Vacation", "Your family went on an amazing vacation to the beach!",
		model.Delta{model.StatHappiness: 10, model.StatHealth: 3}, model.EventPositive, 2, 12, 0.06),
	general("Started Reading Books", "You discovered a love for reading and spent hours at the library.",
		model.Delta{model.StatSmarts: 5, model.StatHappiness: 3}, model.EventPositive, 4, 12, 0.1),
	general("Broke Your Arm", "You fell off your bike and broke your arm. It took weeks to heal.",
		model.Delta{model.StatHealth: -10, model.StatHappiness: -5}, model.EventNegative, 3, 12, 0.05),
	general("Adopted a Pet", "Your family adopted a cute puppy who became your loyal companion.",
		model.Delta{model.StatHappiness: 12, model.StatHealth: 2}, model.EventPositive, 2, 12, 0.07),

	// teens
	general("First Crush", "You developed your first crush and felt butterflies in your stomach.",
		model.Delta{model.StatHappiness: 6, model.StatLooks: 2}, model.EventPositive, 13, 17, 0.15),
	general("Failed a Test", "You failed an important test and your parents were disappointed.",
		model.Delta{model.StatSmarts: -3, model.StatHappiness: -8}, model.EventNegative, 13, 17, 0.12),
	general("Joined Sports Team", "You made it onto the school basketball team and got into great shape!",
		model.Delta{model.StatHealth: 8, model.StatHappiness: 6, model.StatLooks: 3}, model.EventPositive, 13, 17, 0.1),
	general("Got Acne", "Teenage hormones hit hard and you broke out in acne.",
		model.Delta{model.StatLooks: -6, model.StatHappiness: -4}, model.EventNegative, 13, 17, 0.2),
	general("Won Prom King/Queen", "You were voted Prom King/Queen by your classmates!",
		model.Delta{model.StatHappiness: 15, model.StatLooks: 5}, model.EventPositive, 16, 17, 0.03),
	general("Got First Job", "You got your first part-time job at a local store.",
		model.Delta{model.StatSmarts: 3, model.StatHappiness: 4}, model.EventPositive, 15, 17, 0.08),

	// adults
	when(general("Graduated College", "You worked hard and graduated with your degree!",
		model.Delta{model.StatSmarts: 10, model.StatHappiness: 12}, model.EventPositive, 21, 25, 0.15), notEnrolled),
	when(general("Got Promoted", "Your hard work was recognized and you got a promotion at work!",
		model.Delta{model.StatHappiness: 8, model.StatSmarts: 3}, model.EventPositive, 22, 65, 0.1), employed),
	general("Car Accident", "You were in a minor car accident but thankfully only got bruised.",
		model.Delta{model.StatHealth: -8, model.StatHappiness: -5}, model.EventNegative, 18, 80, 0.06),
	general("Fell in Love", "You met someone special and fell deeply in love!",
		model.Delta{model.StatHappiness: 15, model.StatHealth: 3}, model.EventPositive, 18, 40, 0.08),
	general("Started Exercising", "You decided to get in shape and started a regular exercise routine.",
		model.Delta{model.StatHealth: 10, model.StatLooks: 5, model.StatHappiness: 4}, model.EventPositive, 18, 60, 0.09),

	// any age
	general("Another Year Older", "You celebrated another birthday with family and friends.",
		model.Delta{model.StatHappiness: 2}, model.EventNeutral, 1, 100, 0.3),
	general("Feeling Older", "The years are starting to catch up with you.",
		model.Delta{model.StatHealth: -1, model.StatLooks: -1}, model.EventNegative, 30, 100, 0.2),
}

// Generate rolls the general table for c's age.
func Generate(env sim.Env, c model.Character) *model.Event {
	t, ok := sim.Roll(env, c, Table)
	if !ok {
		return nil
	}
	ev := t.Materialize(env, c.Age)
	return &ev
}
