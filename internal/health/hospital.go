package health

import (
	"fmt"
	"strings"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

type VisitKind string

const (
	VisitCheckup   VisitKind = "checkup"
	VisitSurgery   VisitKind = "surgery"
	VisitTherapy   VisitKind = "therapy"
	VisitRehab     VisitKind = "rehab"
	VisitEmergency VisitKind = "emergency"
)

type visitOutcome struct {
	description string
	changes     model.Delta
}

type visitRule struct {
	cost        int
	successRate float64
	success     visitOutcome
	failure     visitOutcome
}

var visits = map[VisitKind]visitRule{
	VisitCheckup: {
		cost: 200, successRate: 1,
		success: visitOutcome{"You had a routine medical checkup. Everything looks good!", model.Delta{model.StatPhysicalHealth: 5, model.StatHappiness: 2}},
	},
	VisitSurgery: {
		cost: 15000, successRate: 0.9,
		success: visitOutcome{"Your surgery was successful! You feel much better.", model.Delta{model.StatPhysicalHealth: 20, model.StatHappiness: 10}},
		failure: visitOutcome{"Unfortunately, there were complications during surgery.", model.Delta{model.StatPhysicalHealth: -10, model.StatHappiness: -15}},
	},
	VisitTherapy: {
		cost: 150, successRate: 0.8,
		success: visitOutcome{"Therapy session went well. You feel more balanced.", model.Delta{model.StatMentalHealth: 10, model.StatHappiness: 8}},
		failure: visitOutcome{"Therapy was difficult today, but that's part of the process.", model.Delta{model.StatMentalHealth: 2, model.StatHappiness: -2}},
	},
	VisitRehab: {
		cost: 8000, successRate: 0.7,
		success: visitOutcome{"Rehabilitation program was successful! You feel in control again.", model.Delta{model.StatAddictions: -25, model.StatMentalHealth: 15, model.StatPhysicalHealth: 10}},
		failure: visitOutcome{"Rehab was challenging and you relapsed, but you're not giving up.", model.Delta{model.StatAddictions: -5, model.StatMentalHealth: 5}},
	},
	VisitEmergency: {
		cost: 5000, successRate: 0.95,
		success: visitOutcome{"Emergency treatment saved your life! You're stable now.", model.Delta{model.StatPhysicalHealth: 15, model.StatHappiness: -5}},
		failure: visitOutcome{"Despite emergency treatment, your condition worsened.", model.Delta{model.StatPhysicalHealth: -20, model.StatHappiness: -20}},
	},
}

// VisitKinds lists the hospital services in menu order.
var VisitKinds = []VisitKind{VisitCheckup, VisitSurgery, VisitTherapy, VisitRehab, VisitEmergency}

// VisitCost is the list price before insurance.
func VisitCost(kind VisitKind) (int, bool) {
	r, ok := visits[kind]
	return r.cost, ok
}

// Visit performs a hospital visit. Out-of-pocket cost follows the
// character's insurance; money never drops below zero.
func Visit(env sim.Env, c model.Character, kind VisitKind) (model.Character, model.Event, error) {
	rule, ok := visits[kind]
	if !ok {
		return c, model.Event{}, fmt.Errorf("%w: hospital visit %q", model.ErrUnknownAction, kind)
	}
	cost := c.Insurance.OutOfPocket(rule.cost)
	if c.Stats.Money < cost {
		return c, model.Event{}, fmt.Errorf("%w: visit costs $%d", model.ErrInsufficientFunds, cost)
	}

	success := true
	if rule.successRate < 1 {
		success = env.Chance(rule.successRate)
	}
	outcome, typ := rule.success, model.EventPositive
	if !success {
		outcome, typ = rule.failure, model.EventNegative
	}

	c = c.ApplyDelta(outcome.changes)
	c = c.ApplyDeltaFloored(model.Delta{model.StatMoney: -cost})

	title := "Hospital Visit: " + strings.ToUpper(string(kind[:1])) + string(kind[1:])
	ev := env.Event(c.Age, title, fmt.Sprintf("%s Cost: $%d", outcome.description, cost),
		outcome.changes, typ, model.CategoryHealth)
	return c, ev, nil
}

// Treat cures a curable disease, charging its treatment cost through
// insurance and restoring half of the damage it did.
func Treat(env sim.Env, c model.Character, diseaseID string) (model.Character, model.Event, error) {
	idx := -1
	for i, d := range c.Diseases {
		if d.ID == diseaseID {
			idx = i
		}
	}
	if idx < 0 {
		return c, model.Event{}, model.ErrDiseaseNotFound
	}
	d := c.Diseases[idx]
	if !d.IsCurable {
		return c, model.Event{}, model.ErrNotCurable
	}
	cost := c.Insurance.OutOfPocket(d.TreatmentCost)
	if c.Stats.Money < cost {
		return c, model.Event{}, fmt.Errorf("%w: treatment costs $%d", model.ErrInsufficientFunds, cost)
	}

	recovery := model.Delta{}
	for k, v := range d.StatEffects {
		if k == model.StatMoney {
			continue
		}
		recovery[k] = -v / 2
	}
	c = c.Clone()
	c.Diseases = append(c.Diseases[:idx], c.Diseases[idx+1:]...)
	c = c.ApplyDelta(recovery)
	c = c.ApplyDeltaFloored(model.Delta{model.StatMoney: -cost})

	ev := env.Event(c.Age, "Recovered: "+d.Name,
		fmt.Sprintf("Treatment for %s worked. Cost: $%d", d.Name, cost),
		recovery, model.EventPositive, model.CategoryHealth)
	return c, ev, nil
}

// DefaultInsurance is the coverage a new life starts with.
func DefaultInsurance() model.Insurance {
	return model.Insurance{
		Type:       model.InsuranceGovernment,
		Coverage:   60,
		Deductible: 500,
	}
}

// PremiumDue is the yearly settlement charge for insurance.
func PremiumDue(c model.Character) int {
	return c.Insurance.MonthlyPremium
}
