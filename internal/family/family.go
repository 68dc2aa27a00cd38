// Package family rolls family events, runs interactions with relatives and
// ages the family each year.
package family

import (
	"fmt"
	"slices"
	"strings"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

type template struct {
	sim.Template
	Relations []model.Relation
}

var (
	parents  = []model.Relation{model.RelationMother, model.RelationFather}
	anyone   = []model.Relation{model.RelationMother, model.RelationFather, model.RelationSibling}
	siblings = []model.Relation{model.RelationSibling}
)

func entry(title, description string, changes model.Delta, typ model.EventType, p float64, rel []model.Relation) template {
	return template{
		Template: sim.Template{
			Title:       title,
			Description: description,
			Changes:     changes,
			Type:        typ,
			Category:    model.CategoryFamily,
			Probability: p,
		},
		Relations: rel,
	}
}

var events = []template{
	entry("Family Vacation", "Your family went on a wonderful vacation together!",
		model.Delta{model.StatHappiness: 12, model.StatHealth: 5}, model.EventPositive, 0.06, parents),
	entry("Got Grounded", "You got in trouble and were grounded for a week.",
		model.Delta{model.StatHappiness: -8}, model.EventNegative, 0.08, parents),
	entry("Received Allowance", "Your parents gave you your weekly allowance!",
		model.Delta{model.StatHappiness: 4}, model.EventPositive, 0.15, parents),
	entry("Parents Divorced", "Your parents decided to get divorced. It was a difficult time.",
		model.Delta{model.StatHappiness: -15, model.StatHealth: -5}, model.EventNegative, 0.02, parents),
	entry("Birthday Gift", "You received an amazing birthday gift from your family!",
		model.Delta{model.StatHappiness: 10}, model.EventPositive, 0.1, anyone),
	entry("Sibling Fight", "You got into a big argument with your sibling.",
		model.Delta{model.StatHappiness: -6, model.StatHealth: -2}, model.EventNegative, 0.12, siblings),
	entry("Sibling Bonding", "You and your sibling had a great time together.",
		model.Delta{model.StatHappiness: 8}, model.EventPositive, 0.1, siblings),
	entry("Protected by Sibling", "Your older sibling stood up for you when you were in trouble.",
		model.Delta{model.StatHappiness: 6, model.StatHealth: 3}, model.EventPositive, 0.05, siblings),
}

func membersFor(living []model.FamilyMember, rel []model.Relation) []model.FamilyMember {
	var out []model.FamilyMember
	for _, m := range living {
		if slices.Contains(rel, m.Relation) {
			out = append(out, m)
		}
	}
	return out
}

// Generate rolls the family table against living relatives and names the
// relative involved.
func Generate(env sim.Env, c model.Character) *model.Event {
	living := c.LivingFamily()
	if len(living) == 0 {
		return nil
	}
	eligible := make([]template, 0, len(events))
	for _, t := range events {
		if len(membersFor(living, t.Relations)) > 0 {
			eligible = append(eligible, t)
		}
	}
	t, ok := sim.RollEach(env, eligible, func(t template) float64 { return t.Probability })
	if !ok {
		return nil
	}
	who := sim.Pick(env, membersFor(living, t.Relations))

	ev := t.Materialize(env, c.Age)
	ev.Description = strings.Replace(ev.Description, "your parents", who.Name, 1)
	ev.Description = strings.Replace(ev.Description, "your sibling", who.Name, 1)
	ev.FamilyMemberInvolved = who.ID
	return &ev
}

type Action string

const (
	ActionTalk       Action = "talk"
	ActionCompliment Action = "compliment"
	ActionInsult     Action = "insult"
	ActionAskMoney   Action = "ask_money"
)

// Interact runs one player interaction with a living relative.
func Interact(env sim.Env, c model.Character, memberID string, action Action) (model.Character, model.Event, error) {
	m, ok := c.FindFamilyMember(memberID)
	if !ok {
		return c, model.Event{}, model.ErrFamilyNotFound
	}
	if !m.IsAlive {
		return c, model.Event{}, model.ErrFamilyDeceased
	}

	var (
		closeness   int
		changes     model.Delta
		title, desc string
		typ         model.EventType
	)
	switch action {
	case ActionTalk:
		closeness = env.IntRange(1, 3)
		changes = model.Delta{model.StatHappiness: 2}
		title = "Talked with " + m.Name
		desc = fmt.Sprintf("You had a nice conversation with %s.", m.Name)
		typ = model.EventPositive
	case ActionCompliment:
		closeness = env.IntRange(3, 7)
		changes = model.Delta{model.StatHappiness: 4}
		title = "Complimented " + m.Name
		desc = fmt.Sprintf("You gave %s a heartfelt compliment.", m.Name)
		typ = model.EventPositive
	case ActionInsult:
		closeness = -env.IntRange(5, 12)
		changes = model.Delta{model.StatHappiness: -3}
		title = "Insulted " + m.Name
		desc = fmt.Sprintf("You said something mean to %s. They didn't take it well.", m.Name)
		typ = model.EventNegative
	case ActionAskMoney:
		title = fmt.Sprintf("Asked %s for Money", m.Name)
		if env.Chance(float64(m.Closeness) / 100 * env.Policy.AskMoneyFactor) {
			amount := env.IntRange(10, 59)
			closeness = -2
			changes = model.Delta{model.StatHappiness: 3, model.StatMoney: amount}
			desc = fmt.Sprintf("%s gave you $%d!", m.Name, amount)
			typ = model.EventPositive
		} else {
			closeness = -5
			changes = model.Delta{model.StatHappiness: -4}
			desc = fmt.Sprintf("%s refused to give you money.", m.Name)
			typ = model.EventNegative
		}
	default:
		return c, model.Event{}, fmt.Errorf("%w: family action %q", model.ErrUnknownAction, action)
	}

	m.Closeness = model.Clamp(m.Closeness + closeness)
	c = c.WithFamilyMember(m).ApplyDelta(changes)

	ev := env.Event(c.Age, title, desc, changes, typ, model.CategoryFamily)
	ev.FamilyMemberInvolved = m.ID
	return c, ev, nil
}

// MortalityChance is the yearly chance that an elderly relative dies.
func MortalityChance(env sim.Env, m model.FamilyMember) float64 {
	if !m.IsAlive || m.Age < env.Policy.FamilyMortalityStart {
		return 0
	}
	p := float64(m.Age-65) / 100
	if p > 0.5 {
		p = 0.5
	}
	return p
}

// Age advances every living relative by one year and reports deaths among
// the elderly.
func Age(env sim.Env, c model.Character) (model.Character, []model.Event) {
	var out []model.Event
	c = c.Clone()
	age := func(m *model.FamilyMember) {
		if !m.IsAlive {
			return
		}
		m.Age++
		if p := MortalityChance(env, *m); p > 0 && env.Chance(p) {
			m.IsAlive = false
			changes := model.Delta{model.StatHappiness: -20}
			ev := env.Event(c.Age, m.Name+" Passed Away",
				fmt.Sprintf("Your %s %s passed away at %d.", m.Relation, m.Name, m.Age),
				changes, model.EventNegative, model.CategoryFamily)
			ev.FamilyMemberInvolved = m.ID
			out = append(out, ev)
		}
	}
	age(&c.Family.Mother)
	age(&c.Family.Father)
	for i := range c.Family.Siblings {
		age(&c.Family.Siblings[i])
	}
	for _, ev := range out {
		c = c.ApplyDelta(ev.StatChanges)
	}
	return c, out
}
