package crime

import (
	"fmt"
	"math"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

// EscapeChance grows a little with smarts and health.
func EscapeChance(p sim.Policy, c model.Character) float64 {
	return p.EscapeBase + float64(c.Stats.Smarts)/1000 + float64(c.Stats.Health)/1000
}

// closeSentence marks the open prison record as ended.
func closeSentence(c model.Character, escaped bool) model.Character {
	for i := len(c.PrisonRecord) - 1; i >= 0; i-- {
		r := &c.PrisonRecord[i]
		if r.Escaped || r.Released {
			continue
		}
		r.Escaped = escaped
		r.Released = !escaped
		break
	}
	return c
}

func extend(c model.Character, years float64) model.Character {
	release := c.ReleaseAge() + years
	c = c.Imprison(release)
	if n := len(c.PrisonRecord); n > 0 && !c.PrisonRecord[n-1].Released && !c.PrisonRecord[n-1].Escaped {
		c.PrisonRecord[n-1].ReleaseAge = release
	}
	return c
}

func Escape(env sim.Env, c model.Character) (model.Character, model.Event, error) {
	if !c.IsInPrison {
		return c, model.Event{}, model.ErrNotInPrison
	}
	if env.Chance(EscapeChance(env.Policy, c)) {
		c = c.Release()
		c = closeSentence(c, true)
		c.CriminalStatus.WantedLevel = model.MaxWantedLevel
		changes := model.Delta{model.StatHappiness: 15, model.StatHealth: -10}
		c = c.ApplyDelta(changes)
		ev := env.Event(c.Age, "Prison Escape Successful", "You successfully escaped from prison! You're now a fugitive.",
			changes, model.EventPositive, model.CategoryPrison)
		return c, ev, nil
	}

	extra := env.FloatRange(1, 3)
	c = extend(c, extra)
	changes := model.Delta{model.StatHappiness: -15, model.StatHealth: -5}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Prison Escape Failed",
		fmt.Sprintf("Your escape attempt failed! Your sentence was extended by %d years.", int(math.Ceil(extra))),
		changes, model.EventNegative, model.CategoryPrison)
	return c, ev, nil
}

const (
	MinBribe = 10000
	MaxBribe = 30000
)

// Bribe pays a guard. Not having the asked amount returns a feedback event
// together with ErrInsufficientFunds and leaves c unchanged.
func Bribe(env sim.Env, c model.Character) (model.Character, model.Event, error) {
	if !c.IsInPrison {
		return c, model.Event{}, model.ErrNotInPrison
	}
	amount := MinBribe + env.Intn(MaxBribe-MinBribe)
	if c.Stats.Money < amount {
		ev := env.Event(c.Age, "Bribery Failed",
			fmt.Sprintf("You don't have enough money to bribe the guard. You need %s.", model.Dollars(amount)),
			model.Delta{model.StatHappiness: -5}, model.EventNegative, model.CategoryPrison)
		return c, ev, fmt.Errorf("%w: bribe needs %s", model.ErrInsufficientFunds, model.Dollars(amount))
	}

	c = c.Clone()
	c.Stats.Money -= amount
	if env.Chance(env.Policy.BribeSuccess) {
		cut := env.FloatRange(1, 3)
		release := max(float64(c.Age)+0.5, c.ReleaseAge()-cut)
		c = c.Imprison(release)
		if n := len(c.PrisonRecord); n > 0 {
			c.PrisonRecord[n-1].ReleaseAge = release
		}
		changes := model.Delta{model.StatHappiness: 10}
		c = c.ApplyDelta(changes)
		ev := env.Event(c.Age, "Successful Bribery",
			fmt.Sprintf("You successfully bribed a guard and reduced your sentence by %d years!", int(math.Ceil(cut))),
			changes, model.EventPositive, model.CategoryPrison)
		return c, ev, nil
	}

	extra := env.FloatRange(0.5, 1.5)
	c = extend(c, extra)
	changes := model.Delta{model.StatHappiness: -10, model.StatReputation: -5}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Bribery Backfired",
		fmt.Sprintf("The guard reported your bribery attempt! Your sentence was extended by %d months.", int(math.Ceil(extra*12))),
		changes, model.EventNegative, model.CategoryPrison)
	return c, ev, nil
}

type prisonEvent struct {
	sim.Template
	Effect func(model.Character) model.Character
}

var prisonEvents = []prisonEvent{
	{Template: sim.Template{
		Title:       "Prison Fight",
		Description: "You got into a fight with another inmate.",
		Changes:     model.Delta{model.StatHealth: -10, model.StatReputation: 5},
		Type:        model.EventNegative,
		Probability: 0.15,
	}},
	{
		Template: sim.Template{
			Title:       "Good Behavior",
			Description: "Your good behavior was noticed by the guards.",
			Changes:     model.Delta{model.StatHappiness: 5},
			Type:        model.EventPositive,
			Probability: 0.1,
		},
		Effect: func(c model.Character) model.Character {
			return c.Imprison(max(float64(c.Age)+0.1, c.ReleaseAge()-0.2))
		},
	},
	{
		Template: sim.Template{
			Title:       "Contraband Found",
			Description: "Guards found contraband in your cell during a search.",
			Changes:     model.Delta{model.StatHappiness: -8},
			Type:        model.EventNegative,
			Probability: 0.08,
		},
		Effect: func(c model.Character) model.Character {
			return extend(c, 0.5)
		},
	},
	{Template: sim.Template{
		Title:       "Prison Job",
		Description: "You got a job in the prison kitchen.",
		Changes:     model.Delta{model.StatHappiness: 3, model.StatSmarts: 1},
		Type:        model.EventPositive,
		Probability: 0.12,
	}},
}

// Generate rolls the prison table for inmates. The chosen event's sentence
// effect is applied; its stat deltas are not.
func Generate(env sim.Env, c model.Character) (model.Character, *model.Event) {
	if !c.IsInPrison {
		return c, nil
	}
	hit, ok := sim.RollEach(env, prisonEvents, func(e prisonEvent) float64 { return e.Probability })
	if !ok {
		return c, nil
	}
	if hit.Effect != nil {
		c = hit.Effect(c)
	}
	hit.Category = model.CategoryPrison
	ev := hit.Materialize(env, c.Age)
	return c, &ev
}

// CheckRelease frees an inmate whose release age has been reached and
// lowers the wanted level by one. An inmate without a release age is freed.
func CheckRelease(env sim.Env, c model.Character) (model.Character, *model.Event) {
	if !c.IsInPrison {
		return c, nil
	}
	if c.PrisonReleaseAge != nil && float64(c.Age) < *c.PrisonReleaseAge {
		return c, nil
	}
	c = c.Release()
	c = closeSentence(c, false)
	c.CriminalStatus.WantedLevel = max(0, c.CriminalStatus.WantedLevel-1)
	changes := model.Delta{model.StatHappiness: 20, model.StatHealth: -5}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Released from Prison",
		"You have been released from prison and are ready to start a new chapter in your life.",
		changes, model.EventPositive, model.CategoryPrison)
	return c, &ev
}
