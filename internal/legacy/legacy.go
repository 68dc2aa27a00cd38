// Package legacy scores a finished life and prepares what is left behind:
// the will, the summary and the funeral.
package legacy

import (
	"fmt"
	"slices"
	"strings"

	"lifepath/internal/assets"
	"lifepath/internal/model"
	"lifepath/internal/sim"
)

// Score weighs a life. It never goes below zero.
func Score(c model.Character, events []model.Event) int {
	score := c.Age * 2

	net := c.Stats.Money + c.Finances.Savings - c.Finances.Debt
	score += net / 10000

	if family := c.FamilyMembers(); len(family) > 0 {
		total := 0
		for _, m := range family {
			total += m.Closeness
		}
		score += total / len(family) / 10
	}

	if n := len(c.Children); n > 0 {
		score += n * 15
		total := 0
		for _, ch := range c.Children {
			total += ch.Relationship
		}
		score += total / n / 5
	}

	score += c.Career.WorkExperience * 3
	if c.Career.JobLevel > 1 {
		score += (c.Career.JobLevel - 1) * 5
	}

	if c.Education.CurrentLevel == model.LevelGraduated {
		score += 20
	}
	if c.College.IsEnrolled || c.Education.GPA > 3.5 {
		score += 15
	}

	score += len(c.Achievements) * 10
	score += len(c.Relationships) * 5

	score -= len(c.CriminalRecord) * 10
	score -= int(c.CriminalStatus.TotalJailTime * 5)

	if c.Stats.Addictions < 20 {
		score += 10
	} else {
		score -= c.Stats.Addictions / 5
	}

	for _, e := range events {
		switch e.Type {
		case model.EventPositive:
			score += 2
		case model.EventNegative:
			score--
		}
	}

	score += c.Will.TotalCharity() / 1000
	return max(score, 0)
}

// Describe renders a score as an epitaph.
func Describe(score int) string {
	switch {
	case score >= 500:
		return "A legendary figure who will be remembered for generations. Their impact on the world was profound and lasting."
	case score >= 300:
		return "A remarkable person who made significant contributions to their community and family. They lived a life worth celebrating."
	case score >= 200:
		return "A good person who touched many lives. They will be fondly remembered by those who knew them."
	case score >= 100:
		return "Someone who lived an ordinary but meaningful life. They had their ups and downs but made their mark."
	case score >= 50:
		return "A person who struggled through life but persevered. They faced many challenges but never gave up."
	default:
		return "A troubled soul who faced many difficulties. Despite their struggles, they were still loved by some."
	}
}

const (
	childrenShare     = 80.0
	partnerShare      = 20.0
	soleSpouseShare   = 50.0
	TimelineLimit     = 20
	KeyEventLimit     = 10
	significantChange = 10
)

// CreateWill drafts a default will when none exists yet.
func CreateWill(c model.Character) model.Character {
	if len(c.Will.Beneficiaries) > 0 {
		return c
	}
	c = c.Clone()
	var bs []model.Beneficiary

	kids := c.LivingChildren()
	for _, ch := range kids {
		bs = append(bs, model.Beneficiary{Name: ch.Name, Relation: "Child", Percentage: childrenShare / float64(len(kids))})
	}
	if p, ok := c.ActiveRelationship(); ok {
		share := partnerShare
		if len(kids) == 0 {
			share = soleSpouseShare
		}
		bs = append(bs, model.Beneficiary{Name: p.Name, Relation: "Spouse/Partner", Percentage: share})
	}
	if len(bs) == 0 {
		var parents []model.Beneficiary
		if m := c.Family.Mother; m.IsAlive {
			parents = append(parents, model.Beneficiary{Name: m.Name, Relation: "Mother"})
		}
		if f := c.Family.Father; f.IsAlive {
			parents = append(parents, model.Beneficiary{Name: f.Name, Relation: "Father"})
		}
		for i := range parents {
			parents[i].Percentage = 100 / float64(len(parents))
		}
		bs = parents
	}

	c.Will.Beneficiaries = bs
	c.Will.LastUpdated = c.Age
	return c
}

var milestones = []string{"Born", "Graduated", "Married", "Had a Baby", "Got Hired", "Promoted", "Achievement", "Retired", "Died"}

func isMilestone(e model.Event) bool {
	for _, m := range milestones {
		if strings.Contains(e.Title, m) {
			return true
		}
	}
	if e.Type != model.EventPositive {
		return false
	}
	total := 0
	for _, v := range e.StatChanges {
		total += v
	}
	return total >= significantChange || total <= -significantChange
}

// Timeline picks the defining moments of a life in age order.
func Timeline(events []model.Event) []model.Event {
	var out []model.Event
	for _, e := range events {
		if isMilestone(e) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Event) int { return a.Age - b.Age })
	if len(out) > TimelineLimit {
		out = out[:TimelineLimit]
	}
	return out
}

// KeyEvents is the positive part of the timeline, as shown on the summary.
func KeyEvents(events []model.Event) []model.Event {
	var out []model.Event
	for _, e := range Timeline(events) {
		if e.Type == model.EventPositive {
			out = append(out, e)
		}
		if len(out) == KeyEventLimit {
			break
		}
	}
	return out
}

// Summarize freezes the record of a finished life.
func Summarize(c model.Character, events []model.Event) model.LifeSummary {
	jobs := []string{}
	for _, j := range c.Career.JobsHeld {
		if !slices.Contains(jobs, j) {
			jobs = append(jobs, j)
		}
	}
	keys := KeyEvents(events)
	if keys == nil {
		keys = []model.Event{}
	}
	return model.LifeSummary{
		TotalYearsLived:      c.Age,
		CauseOfDeath:         c.DeathCause,
		TotalWealth:          assets.NetWorth(c),
		JobsHeld:             jobs,
		RelationshipsCount:   len(c.Relationships),
		ChildrenCount:        len(c.Children),
		CrimesCommitted:      c.CriminalStatus.TotalCrimesCommitted,
		AchievementsUnlocked: len(c.Achievements),
		LegacyScore:          Score(c, events),
		KeyEvents:            keys,
		FinalStats:           c.Stats,
	}
}

// DeathEvent is the last entry of a life.
func DeathEvent(env sim.Env, c model.Character, cause string) model.Event {
	return env.Event(c.Age, "Died",
		fmt.Sprintf("Your life has come to an end at age %d. Cause of death: %s. Rest in peace.", c.Age, cause),
		nil, model.EventNegative, model.CategoryHealth)
}

// Funeral lists how the living said goodbye.
func Funeral(env sim.Env, c model.Character) []model.Event {
	var out []model.Event
	for _, m := range c.LivingFamily() {
		out = append(out, env.Event(c.Age, m.Name+"'s Grief",
			m.Name+" was devastated by your death and spoke beautifully at your funeral.",
			nil, model.EventNeutral, model.CategoryFamily))
	}
	for _, r := range c.Relationships {
		if !r.IsActive {
			continue
		}
		out = append(out, env.Event(c.Age, r.Name+"'s Farewell",
			r.Name+" was heartbroken and left flowers at your grave.",
			nil, model.EventNeutral, model.CategoryGeneral))
	}
	return out
}

// Finalize ends a life: it stamps the death, drafts the will if needed,
// scores the life and builds the summary. It returns the death and funeral
// events to append after events.
func Finalize(env sim.Env, c model.Character, cause string, events []model.Event) (model.Character, []model.Event) {
	if !c.IsAlive {
		return c, nil
	}
	c = CreateWill(c)
	c = c.Clone()
	c.IsAlive = false
	c.DeathCause = cause
	c.DeathAge = c.Age

	out := []model.Event{DeathEvent(env, c, cause)}
	out = append(out, Funeral(env, c)...)

	all := append(slices.Clone(events), out...)
	summary := Summarize(c, all)
	c.LegacyScore = summary.LegacyScore
	c.LifeSummary = &summary
	return c, out
}
