// Package teen covers dating, teenage mischief, first jobs and pregnancy.
package teen

import (
	"fmt"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

var PartnerFirstNames = map[model.Gender][]string{
	model.Male:   {"Alex", "Jake", "Ryan", "Tyler", "Brandon", "Justin", "Kevin", "Chris", "Matt", "Nick"},
	model.Female: {"Ashley", "Jessica", "Sarah", "Emily", "Amanda", "Brittany", "Samantha", "Rachel", "Lauren", "Megan"},
}

var PartnerLastNames = []string{"Johnson", "Williams", "Brown", "Davis", "Miller", "Wilson", "Moore", "Taylor", "Anderson", "Thomas"}

// MinDatingAge is the youngest age for dating, pregnancy aside.
const MinDatingAge = 13

// RandomPartner creates an active dating relationship with someone within
// two years of age.
func RandomPartner(env sim.Env, age int) model.Relationship {
	gender := model.Female
	if env.Chance(0.5) {
		gender = model.Male
	}
	name := sim.Pick(env, PartnerFirstNames[gender]) + " " + sim.Pick(env, PartnerLastNames)
	partnerAge := max(MinDatingAge, age+env.IntRange(-2, 2))
	return model.Relationship{
		ID:   env.NewID(),
		Name: name,
		Kind: model.RelationshipDating,
		Age:  partnerAge,
		Stats: model.RelationshipStats{
			Trust:      env.IntRange(60, 89),
			Attraction: env.IntRange(60, 89),
			Loyalty:    env.IntRange(60, 89),
		},
		StartedAt: age,
		IsActive:  true,
	}
}

func activeByID(c model.Character, id string) (model.Relationship, error) {
	r, ok := c.FindRelationship(id)
	if !ok {
		return r, model.ErrRelationshipNotFound
	}
	if !r.IsActive {
		return r, model.ErrRelationshipEnded
	}
	return r, nil
}

func relEvent(env sim.Env, c model.Character, title, desc string, changes model.Delta, typ model.EventType) model.Event {
	return env.Event(c.Age, title, desc, changes, typ, model.CategoryRelationship)
}

// StartDating begins the single active relationship.
func StartDating(env sim.Env, c model.Character) (model.Character, model.Event, error) {
	if c.Age < MinDatingAge {
		return c, model.Event{}, model.ErrTooYoung
	}
	if _, ok := c.ActiveRelationship(); ok {
		return c, model.Event{}, model.ErrAlreadyDating
	}
	partner := RandomPartner(env, c.Age)
	c, err := c.AddRelationship(partner)
	if err != nil {
		return c, model.Event{}, err
	}
	changes := model.Delta{model.StatHappiness: 8, model.StatReputation: 2}
	c = c.ApplyDelta(changes)
	ev := relEvent(env, c, "Started Dating",
		fmt.Sprintf("You started dating %s! They're %d years old and you really hit it off.", partner.Name, partner.Age),
		changes, model.EventPositive)
	return c, ev, nil
}

func BreakUp(env sim.Env, c model.Character, id string) (model.Character, model.Event, error) {
	r, err := activeByID(c, id)
	if err != nil {
		return c, model.Event{}, err
	}
	if c, err = c.EndRelationship(id); err != nil {
		return c, model.Event{}, err
	}
	changes := model.Delta{model.StatHappiness: -10, model.StatReputation: -1}
	c = c.ApplyDelta(changes)
	ev := relEvent(env, c, "Broke Up",
		fmt.Sprintf("You and %s decided to break up. It was emotional but probably for the best.", r.Name),
		changes, model.EventNegative)
	return c, ev, nil
}

// Cheat is detected with the policy's cheat-detection probability. Detection
// ends the relationship; otherwise trust and loyalty quietly erode.
func Cheat(env sim.Env, c model.Character, id string) (model.Character, model.Event, error) {
	r, err := activeByID(c, id)
	if err != nil {
		return c, model.Event{}, err
	}

	var (
		changes     model.Delta
		title, desc string
	)
	if env.Chance(env.Policy.CheatDetection) {
		if c, err = c.EndRelationship(id); err != nil {
			return c, model.Event{}, err
		}
		changes = model.Delta{model.StatHappiness: -15, model.StatReputation: -10}
		title = "Caught Cheating"
		desc = fmt.Sprintf("You cheated on %s and got caught! They broke up with you immediately and word spread around school.", r.Name)
	} else {
		r.Stats.Trust -= 20
		r.Stats.Loyalty -= 15
		if c, err = c.UpdateRelationship(r); err != nil {
			return c, model.Event{}, err
		}
		changes = model.Delta{model.StatHappiness: 5, model.StatReputation: -2}
		title = "Cheated"
		desc = fmt.Sprintf("You cheated on %s but didn't get caught. You feel guilty about it though.", r.Name)
	}
	c.RiskMeter = model.Clamp(c.RiskMeter + 15)
	c = c.ApplyDelta(changes)
	return c, relEvent(env, c, title, desc, changes, model.EventNegative), nil
}

// GiveGift costs $10-59 and strengthens the relationship. Not being able to
// afford it rejects the action without an event.
func GiveGift(env sim.Env, c model.Character, id string) (model.Character, model.Event, error) {
	r, err := activeByID(c, id)
	if err != nil {
		return c, model.Event{}, err
	}
	cost := env.IntRange(10, 59)
	if c.Stats.Money < cost {
		return c, model.Event{}, fmt.Errorf("%w: gift costs $%d", model.ErrInsufficientFunds, cost)
	}
	r.Stats.Trust += 5
	r.Stats.Attraction += 3
	r.Stats.Loyalty += 4
	if c, err = c.UpdateRelationship(r); err != nil {
		return c, model.Event{}, err
	}
	changes := model.Delta{model.StatHappiness: 4, model.StatMoney: -cost}
	c = c.ApplyDeltaFloored(changes)
	ev := relEvent(env, c, "Gave Gift",
		fmt.Sprintf("You bought %s a thoughtful gift for $%d. They loved it!", r.Name, cost),
		changes, model.EventPositive)
	return c, ev, nil
}

// Flirt applies a flirt whose outcome was decided by the caller.
func Flirt(env sim.Env, c model.Character, id, line string, success bool, delta model.RelationshipStats) (model.Character, model.Event, error) {
	r, err := activeByID(c, id)
	if err != nil {
		return c, model.Event{}, err
	}
	r.Stats.Trust += delta.Trust
	r.Stats.Attraction += delta.Attraction
	r.Stats.Loyalty += delta.Loyalty
	if c, err = c.UpdateRelationship(r); err != nil {
		return c, model.Event{}, err
	}

	title, typ := "Successful Flirt", model.EventPositive
	desc := fmt.Sprintf("You tried %q with %s and they loved it!", line, r.Name)
	changes := model.Delta{model.StatHappiness: 3}
	if !success {
		title, typ = "Awkward Flirt", model.EventNegative
		desc = fmt.Sprintf("You tried %q with %s but it came off awkward.", line, r.Name)
		changes = model.Delta{model.StatHappiness: -2}
	}
	c = c.ApplyDelta(changes)
	return c, relEvent(env, c, title, desc, changes, typ), nil
}
