package education

import (
	"fmt"
	"slices"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

const (
	titleJoinedClub = "Joined a Club"
	titleHonorRoll  = "Made Honor Roll"
)

func school(title, description string, changes model.Delta, typ model.EventType, p float64) sim.Template {
	return sim.Template{
		Title:       title,
		Description: description,
		Changes:     changes,
		Type:        typ,
		Category:    model.CategoryEducation,
		Probability: p,
		When:        func(c model.Character) bool { return c.Education.CurrentLevel.InSchool() },
	}
}

var Events = []sim.Template{
	school("Aced a Test", "You studied hard and got a perfect score on your math test!",
		model.Delta{model.StatSmarts: 5, model.StatHappiness: 3}, model.EventPositive, 0.1),
	school("Failed a Quiz", "You forgot to study and bombed the history quiz.",
		model.Delta{model.StatSmarts: -2, model.StatHappiness: -4}, model.EventNegative, 0.08),
	school(titleHonorRoll, "Your excellent grades earned you a spot on the honor roll!",
		model.Delta{model.StatSmarts: 8, model.StatHappiness: 6}, model.EventPositive, 0.05),
	school("Got Detention", "You were caught talking in class and got detention.",
		model.Delta{model.StatHappiness: -5}, model.EventNegative, 0.06),
	school("Made New Friends", "You hit it off with some classmates during lunch.",
		model.Delta{model.StatHappiness: 7, model.StatLooks: 2}, model.EventPositive, 0.12),
	school("Got Bullied", "Some older kids picked on you during recess.",
		model.Delta{model.StatHappiness: -8, model.StatHealth: -3}, model.EventNegative, 0.07),
	school(titleJoinedClub, "You joined a club!",
		model.Delta{model.StatHappiness: 5, model.StatSmarts: 2}, model.EventPositive, 0.08),
	school("Won School Competition", "You represented your school in a competition and won first place!",
		model.Delta{model.StatSmarts: 6, model.StatHappiness: 8, model.StatLooks: 3}, model.EventPositive, 0.04),
	school("Skipped Class", "You decided to skip math class and hang out behind the gym.",
		model.Delta{model.StatSmarts: -3, model.StatHappiness: 2}, model.EventNegative, 0.05),
	school("Cheated on Test", "You copied answers from your neighbor but felt guilty about it.",
		model.Delta{model.StatSmarts: 2, model.StatHappiness: -4}, model.EventNegative, 0.04),
}

// Generate rolls the school table. Clubs and honor roll are recorded on the
// education record.
func Generate(env sim.Env, c model.Character) (model.Character, *model.Event) {
	t, ok := sim.Roll(env, c, Events)
	if !ok {
		return c, nil
	}
	ev := t.Materialize(env, c.Age)
	switch t.Title {
	case titleJoinedClub:
		club := sim.Pick(env, Clubs)
		ev.Description = fmt.Sprintf("You joined the %s!", club)
		if !slices.Contains(c.Education.Clubs, club) {
			c = c.Clone()
			c.Education.Clubs = append(c.Education.Clubs, club)
		}
	case titleHonorRoll:
		c = c.Clone()
		c.Education.Achievements = append(c.Education.Achievements, "Honor Roll")
	}
	return c, &ev
}
