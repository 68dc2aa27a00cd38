// Package crime covers adult crimes, sentencing and life in prison.
package crime

import (
	"fmt"
	"math"
	"strings"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

type Difficulty string

const (
	Easy    Difficulty = "easy"
	Medium  Difficulty = "medium"
	Hard    Difficulty = "hard"
	Extreme Difficulty = "extreme"
)

// Action is a crime the player can attempt.
type Action struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Description     string                `json:"description"`
	Difficulty      Difficulty            `json:"difficulty"`
	BaseSuccessRate float64               `json:"baseSuccessRate"`
	MinReward       int                   `json:"minReward"`
	MaxReward       int                   `json:"maxReward"`
	JailTime        [2]float64            `json:"jailTimeRange"`
	RequiredStats   map[model.StatKey]int `json:"requiredStats,omitempty"`
	WantedIncrease  int                   `json:"wantedLevelIncrease"`
}

var Actions = []Action{
	{
		ID:              "steal_car",
		Name:            "Steal Car",
		Description:     "Attempt to steal a parked car",
		Difficulty:      Medium,
		BaseSuccessRate: 0.4,
		MinReward:       2000,
		MaxReward:       15000,
		JailTime:        [2]float64{1, 3},
		RequiredStats:   map[model.StatKey]int{model.StatSmarts: 30},
		WantedIncrease:  2,
	},
	{
		ID:              "rob_bank",
		Name:            "Rob Bank",
		Description:     "Plan and execute a bank robbery",
		Difficulty:      Extreme,
		BaseSuccessRate: 0.15,
		MinReward:       50000,
		MaxReward:       500000,
		JailTime:        [2]float64{10, 25},
		RequiredStats:   map[model.StatKey]int{model.StatSmarts: 60, model.StatHealth: 70},
		WantedIncrease:  5,
	},
	{
		ID:              "murder",
		Name:            "Murder",
		Description:     "Commit murder (extremely dangerous)",
		Difficulty:      Extreme,
		BaseSuccessRate: 0.3,
		JailTime:        [2]float64{25, 50},
		RequiredStats:   map[model.StatKey]int{model.StatHealth: 50},
		WantedIncrease:  5,
	},
	{
		ID:              "smuggle_drugs",
		Name:            "Smuggle Drugs",
		Description:     "Transport illegal substances across borders",
		Difficulty:      Hard,
		BaseSuccessRate: 0.25,
		MinReward:       10000,
		MaxReward:       100000,
		JailTime:        [2]float64{5, 15},
		RequiredStats:   map[model.StatKey]int{model.StatSmarts: 40, model.StatReputation: 30},
		WantedIncrease:  3,
	},
	{
		ID:              "counterfeit",
		Name:            "Counterfeit Money",
		Description:     "Create and distribute fake currency",
		Difficulty:      Hard,
		BaseSuccessRate: 0.35,
		MinReward:       5000,
		MaxReward:       50000,
		JailTime:        [2]float64{3, 10},
		RequiredStats:   map[model.StatKey]int{model.StatSmarts: 70},
		WantedIncrease:  2,
	},
	{
		ID:              "pickpocket",
		Name:            "Pickpocket",
		Description:     "Steal from unsuspecting pedestrians",
		Difficulty:      Easy,
		BaseSuccessRate: 0.6,
		MinReward:       50,
		MaxReward:       500,
		JailTime:        [2]float64{0.1, 1},
		WantedIncrease:  1,
	},
}

func Find(id string) (Action, bool) {
	for _, a := range Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// SuccessRate adjusts the base rate by each required stat's margin and the
// wanted level, never dropping below the policy floor.
func SuccessRate(p sim.Policy, c model.Character, a Action) float64 {
	rate := a.BaseSuccessRate
	for stat, need := range a.RequiredStats {
		switch have := c.Stats.Get(stat); {
		case have >= need+20:
			rate += 0.2
		case have >= need:
			rate += 0.1
		default:
			rate -= 0.2
		}
	}
	rate -= float64(c.CriminalStatus.WantedLevel) * p.WantedPenalty
	return max(p.CrimeSuccessFloor, rate)
}

func raiseWanted(c model.Character, n int) model.Character {
	c.CriminalStatus.WantedLevel = min(model.MaxWantedLevel, c.CriminalStatus.WantedLevel+n)
	return c
}

// Commit attempts crime id. A failed attempt, or a successful one that is
// captured anyway, ends in a sentence of whole years rounded up from the
// sampled jail time.
func Commit(env sim.Env, c model.Character, id string) (model.Character, model.Event, error) {
	if c.IsInPrison {
		return c, model.Event{}, model.ErrInPrison
	}
	a, ok := Find(id)
	if !ok {
		return c, model.Event{}, fmt.Errorf("%w: crime %q", model.ErrNotFound, id)
	}

	success := env.Chance(SuccessRate(env.Policy, c, a))
	caught := !success || env.Chance(env.Policy.CrimeCaptureChance)

	c = c.Clone()
	c.CriminalStatus.TotalCrimesCommitted++
	c = raiseWanted(c, a.WantedIncrease)
	lower := strings.ToLower(a.Name)

	if !caught {
		reward := a.MinReward + env.Intn(a.MaxReward-a.MinReward)
		c.Stats.Money += reward
		c.CriminalStatus.ActiveWarrants = append(c.CriminalStatus.ActiveWarrants, a.Name)
		changes := model.Delta{model.StatHappiness: 10, model.StatReputation: -5}
		c = c.ApplyDelta(changes)
		ev := env.Event(c.Age, "Successful "+a.Name,
			fmt.Sprintf("You successfully committed %s and got away with %s!", lower, model.Dollars(reward)),
			changes, model.EventPositive, model.CategoryCriminal)
		return c, ev, nil
	}

	jail := env.FloatRange(a.JailTime[0], a.JailTime[1])
	years := int(math.Ceil(jail))
	c = Sentence(env, c, a.Name, jail, fmt.Sprintf("%d years in prison", years))
	changes := model.Delta{model.StatHappiness: -20, model.StatReputation: -15, model.StatHealth: -5}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Caught: "+a.Name,
		fmt.Sprintf("You were caught attempting %s and sentenced to %d years in prison!", lower, years),
		changes, model.EventNegative, model.CategoryCriminal)
	return c, ev, nil
}

// Sentence records the conviction and locks c up until age + ceil(jail).
func Sentence(env sim.Env, c model.Character, crime string, jail float64, punishment string) model.Character {
	release := float64(c.Age) + math.Ceil(jail)
	c = c.Imprison(release)
	c.CriminalRecord = append(c.CriminalRecord, model.CriminalRecord{
		ID:         env.NewID(),
		Crime:      crime,
		Age:        c.Age,
		Punishment: punishment,
		Timestamp:  env.Now(),
	})
	c.PrisonRecord = append(c.PrisonRecord, model.PrisonRecord{
		ID:            env.NewID(),
		Crime:         crime,
		SentenceYears: jail,
		StartAge:      c.Age,
		ReleaseAge:    release,
	})
	c.CriminalStatus.TimesSentenced++
	c.CriminalStatus.TotalJailTime += jail
	c.CriminalStatus.ActiveWarrants = []string{}
	return c
}
