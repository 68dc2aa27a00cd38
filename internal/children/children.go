// Package children handles births, parenting and growing children up.
package children

import (
	"fmt"
	"math"
	"slices"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

var Names = map[model.Gender][]string{
	model.Male: {
		"Alexander", "Benjamin", "Christopher", "Daniel", "Ethan", "Felix", "Gabriel", "Henry", "Isaac", "Jacob",
		"Kevin", "Liam", "Mason", "Noah", "Oliver", "Patrick", "Quinn", "Ryan", "Samuel", "Thomas",
	},
	model.Female: {
		"Abigail", "Bella", "Charlotte", "Diana", "Emma", "Faith", "Grace", "Hannah", "Isabella", "Julia",
		"Katherine", "Luna", "Mia", "Natalie", "Olivia", "Penelope", "Quinn", "Ruby", "Sophia", "Taylor",
	},
}

var Activities = []string{
	"Playing with toys", "Reading books", "Drawing pictures", "Playing sports", "Learning music",
	"Studying hard", "Making friends", "Exploring nature", "Building things", "Helping others",
	"Playing video games", "Dancing", "Cooking", "Gardening", "Writing stories",
}

const (
	BirthCost    = 5000
	MinParentAge = 16
)

func jitter(env sim.Env, base, spread float64) int {
	return int(math.Round(base + env.FloatRange(-spread, spread)))
}

// Have adds a newborn whose stats lean on the parent's. An empty partner
// means a single parent.
func Have(env sim.Env, c model.Character, partner string) (model.Character, model.Event, error) {
	if c.Age < MinParentAge {
		return c, model.Event{}, model.ErrTooYoung
	}
	gender := model.Female
	if env.Chance(0.5) {
		gender = model.Male
	}
	name := sim.Pick(env, Names[gender])

	child := model.Child{
		ID:     env.NewID(),
		Name:   name,
		Gender: gender,
		BornAt: c.Age,
		Stats: model.ChildStats{
			Health:    model.ClampRange(jitter(env, float64(c.Stats.PhysicalHealth), 20), 30, 100),
			Smarts:    model.ClampRange(jitter(env, float64(c.Stats.Smarts), 20), 30, 100),
			Looks:     model.ClampRange(jitter(env, float64(c.Stats.Looks), 20), 30, 100),
			Happiness: model.ClampRange(jitter(env, float64(c.Stats.Happiness), 15), 50, 100),
		},
		Relationship:    env.IntRange(80, 99),
		IsAlive:         true,
		Achievements:    []string{},
		CurrentActivity: "Sleeping peacefully",
		Genetics: model.ChildGenetics{
			HealthPredisposition: jitter(env, float64(c.Genetics.HealthPredisposition), 10),
			LongevityGenes:       jitter(env, float64(c.Genetics.LongevityGenes), 10),
		},
		OtherParent: partner,
	}

	c = c.Clone()
	c.Children = append(c.Children, child)

	parent := "You're raising them as a single parent."
	if partner != "" {
		parent = partner + " is the other parent."
	}
	changes := model.Delta{model.StatHappiness: 15, model.StatMoney: -BirthCost}
	c = c.ApplyDeltaFloored(changes)
	ev := env.Event(c.Age, "Had a Baby!",
		fmt.Sprintf("Congratulations! You welcomed %s into the world. %s Hospital costs: %s.", name, parent, model.Dollars(BirthCost)),
		changes, model.EventPositive, model.CategoryFamily)
	ev.FamilyMemberInvolved = child.ID
	return c, ev, nil
}

type Action string

const (
	Play    Action = "play"
	Teach   Action = "teach"
	Punish  Action = "punish"
	Support Action = "support"
	Ignore  Action = "ignore"
)

var Actions = []Action{Play, Teach, Punish, Support, Ignore}

func Interact(env sim.Env, c model.Character, childID string, action Action) (model.Character, model.Event, error) {
	ch, ok := c.FindChild(childID)
	if !ok || !ch.IsAlive {
		return c, model.Event{}, model.ErrChildNotFound
	}

	var (
		bond        int
		kid         model.ChildStats
		changes     model.Delta
		title, desc string
		typ         = model.EventPositive
	)
	switch action {
	case Play:
		bond = env.IntRange(3, 7)
		kid.Happiness = env.IntRange(5, 14)
		changes = model.Delta{model.StatHappiness: 3}
		title = "Played with " + ch.Name
		desc = fmt.Sprintf("You spent quality time playing with %s. They loved every minute of it!", ch.Name)
	case Teach:
		bond = env.IntRange(1, 3)
		kid.Smarts = env.IntRange(2, 9)
		changes = model.Delta{model.StatHappiness: 2}
		title = "Taught " + ch.Name
		desc = fmt.Sprintf("You spent time teaching %s new things. They're getting smarter!", ch.Name)
	case Punish:
		bond = -env.IntRange(3, 10)
		kid.Happiness = -env.IntRange(5, 19)
		changes = model.Delta{model.StatHappiness: -2}
		title = "Punished " + ch.Name
		desc = fmt.Sprintf("You had to discipline %s for misbehaving. They weren't happy about it.", ch.Name)
		typ = model.EventNegative
	case Support:
		bond = env.IntRange(5, 12)
		kid.Happiness = env.IntRange(8, 19)
		changes = model.Delta{model.StatHappiness: 5, model.StatMoney: -100}
		title = "Supported " + ch.Name
		desc = fmt.Sprintf("You provided emotional and financial support to %s. They feel loved and secure.", ch.Name)
	case Ignore:
		bond = -env.IntRange(2, 6)
		kid.Happiness = -env.IntRange(3, 10)
		changes = model.Delta{}
		title = "Ignored " + ch.Name
		desc = fmt.Sprintf("You were too busy to spend time with %s. They felt neglected.", ch.Name)
		typ = model.EventNegative
	default:
		return c, model.Event{}, fmt.Errorf("%w: child action %q", model.ErrUnknownAction, action)
	}

	ch.Relationship = model.Clamp(ch.Relationship + bond)
	ch.Stats = addStats(ch.Stats, kid)
	c = c.WithChild(ch).ApplyDeltaFloored(changes)

	ev := env.Event(c.Age, title, desc, changes, typ, model.CategoryFamily)
	ev.FamilyMemberInvolved = ch.ID
	return c, ev, nil
}

func addStats(s, d model.ChildStats) model.ChildStats {
	return model.ChildStats{
		Health:    model.Clamp(s.Health + d.Health),
		Smarts:    model.Clamp(s.Smarts + d.Smarts),
		Looks:     model.Clamp(s.Looks + d.Looks),
		Happiness: model.Clamp(s.Happiness + d.Happiness),
	}
}

// Milestones are recorded once each, on the birthday that reaches them.
const (
	MilestoneSchool   = "Started School"
	MilestoneHonor    = "Honor Student"
	MilestoneLicense  = "Got Driver's License"
	MilestoneAdult    = "Became Adult"
	honorSmartsNeeded = 80
)

// Milestone names what a child reaching age earns. The honor check uses the
// smarts the child had going into the birthday.
func Milestone(age, smarts int) string {
	switch {
	case age == 5:
		return MilestoneSchool
	case age == 10 && smarts > honorSmartsNeeded:
		return MilestoneHonor
	case age == 16:
		return MilestoneLicense
	case age == 18:
		return MilestoneAdult
	}
	return ""
}

// Age grows every living child by a year with a little stat drift.
func Age(env sim.Env, c model.Character) model.Character {
	if len(c.Children) == 0 {
		return c
	}
	c = c.Clone()
	for i, ch := range c.Children {
		if !ch.IsAlive {
			continue
		}
		smarts := ch.Stats.Smarts
		ch.Age++
		if ch.Age >= 3 {
			ch.CurrentActivity = sim.Pick(env, Activities)
		}
		ch.Stats = addStats(ch.Stats, model.ChildStats{
			Health:    env.IntRange(-3, 2),
			Smarts:    env.IntRange(-2, 5),
			Looks:     env.IntRange(-2, 1),
			Happiness: env.IntRange(-5, 4),
		})
		if m := Milestone(ch.Age, smarts); m != "" && !slices.Contains(ch.Achievements, m) {
			ch.Achievements = append(ch.Achievements, m)
		}
		c.Children[i] = ch
	}
	return c
}

// Generate picks one living child and rolls the parenting table for them.
// The returned event's deltas are not yet applied.
func Generate(env sim.Env, c model.Character) *model.Event {
	living := c.LivingChildren()
	if len(living) == 0 {
		return nil
	}
	ch := sim.Pick(env, living)
	table := []sim.Template{
		{
			Title:       ch.Name + "'s Achievement",
			Description: fmt.Sprintf("%s did something amazing! They're growing up so fast.", ch.Name),
			Changes:     model.Delta{model.StatHappiness: 5},
			Type:        model.EventPositive,
			Probability: 0.1,
		},
		{
			Title:       ch.Name + " Got Sick",
			Description: fmt.Sprintf("%s came down with a fever. You took care of them until they felt better.", ch.Name),
			Changes:     model.Delta{model.StatHappiness: -3, model.StatMoney: -200},
			Type:        model.EventNegative,
			Probability: 0.08,
		},
		{
			Title:       ch.Name + "'s School Event",
			Description: fmt.Sprintf("%s participated in a school event. You're so proud of them!", ch.Name),
			Changes:     model.Delta{model.StatHappiness: 4},
			Type:        model.EventPositive,
			Probability: 0.12,
		},
		{
			Title:       "Quality Time with " + ch.Name,
			Description: fmt.Sprintf("You spent a wonderful day with %s. These moments are precious.", ch.Name),
			Changes:     model.Delta{model.StatHappiness: 6},
			Type:        model.EventPositive,
			Probability: 0.15,
		},
	}
	for i := range table {
		table[i].Category = model.CategoryFamily
	}
	t, ok := sim.Roll(env, c, table)
	if !ok {
		return nil
	}
	ev := t.Materialize(env, c.Age)
	ev.FamilyMemberInvolved = ch.ID
	return &ev
}
