package game

import (
	"slices"

	"lifepath/internal/achievement"
	"lifepath/internal/aging"
	"lifepath/internal/assets"
	"lifepath/internal/career"
	"lifepath/internal/children"
	"lifepath/internal/crime"
	"lifepath/internal/education"
	"lifepath/internal/events"
	"lifepath/internal/family"
	"lifepath/internal/health"
	"lifepath/internal/legacy"
	"lifepath/internal/model"
	"lifepath/internal/sim"
	"lifepath/internal/teen"
)

// Year is the outcome of one age-up.
type Year struct {
	Character model.Character
	Events    []model.Event
	Died      bool
}

type ticker struct {
	env     sim.Env
	c       model.Character
	history []model.Event
	out     []model.Event
}

// record logs an event whose changes are already on the character.
func (t *ticker) record(ev *model.Event) {
	if ev != nil {
		t.out = append(t.out, *ev)
	}
}

func (t *ticker) recordAll(evs []model.Event) {
	t.out = append(t.out, evs...)
}

// apply logs an event and applies its deltas, keeping money at or above zero.
func (t *ticker) apply(ev *model.Event) {
	if ev == nil {
		return
	}
	t.c = t.c.ApplyDeltaFloored(ev.StatChanges)
	t.out = append(t.out, *ev)
}

func (t *ticker) log() []model.Event {
	return append(slices.Clone(t.history), t.out...)
}

// Advance runs one year of a living character's life. history is the event
// log so far; it is read, never modified.
func Advance(env sim.Env, settings model.Settings, c model.Character, history []model.Event) Year {
	t := &ticker{env: env, c: c.Clone(), history: history}
	t.c.Age++

	var ev *model.Event
	t.c, ev = crime.CheckRelease(env, t.c)
	t.record(ev)

	t.c = assets.Drift(env, t.c)
	var deaths []model.Event
	t.c, deaths = family.Age(env, t.c)
	t.recordAll(deaths)
	t.c = education.Update(env, t.c)
	t.c = teen.UpdateGrounded(t.c)
	t.c = children.Age(env, t.c)
	t.c, ev = career.Progress(env, t.c)
	t.record(ev)

	t.c, ev = health.Tick(env, t.c)
	t.record(ev)

	if t.c.IsInPrison {
		t.c, ev = crime.Generate(env, t.c)
		t.apply(ev)
	}

	if dead, cause := health.CheckDeath(env, t.c); dead {
		var final []model.Event
		t.c, final = legacy.Finalize(env, t.c, cause, t.log())
		t.recordAll(final)
		return Year{Character: t.c, Events: t.out, Died: true}
	}

	t.pregnancy(settings)

	t.apply(events.Generate(env, t.c))
	t.apply(family.Generate(env, t.c))
	t.c, ev = education.Generate(env, t.c)
	t.apply(ev)
	t.apply(teen.Generate(env, t.c))
	if !t.c.IsInPrison {
		t.c, ev = career.Generate(env, t.c)
		t.apply(ev)
	}
	t.apply(children.Generate(env, t.c))

	var unlocked []model.Event
	t.c, unlocked = achievement.Evaluate(env, t.c, t.log())
	t.recordAll(unlocked)

	var old []model.Event
	t.c, old = aging.Apply(env, t.c)
	t.recordAll(old)

	t.c = Settle(t.c)
	return Year{Character: t.c, Events: t.out}
}

// pregnancy delivers a baby that is due, or rolls for a new pregnancy when
// the setting allows it.
func (t *ticker) pregnancy(settings model.Settings) {
	if t.c.IsPregnant && t.c.Age >= t.c.PregnancyDueAge {
		partner := ""
		if p, ok := t.c.ActiveRelationship(); ok {
			partner = p.Name
		}
		c, ev, err := children.Have(t.env, t.c, partner)
		if err == nil {
			t.c = c
			t.record(&ev)
		}
		t.c = t.c.Clone()
		t.c.IsPregnant = false
		t.c.PregnancyDueAge = 0
		return
	}
	if settings.PregnancyEnabled {
		var ev *model.Event
		t.c, ev = teen.CheckPregnancy(t.env, t.c)
		t.record(ev)
	}
}
