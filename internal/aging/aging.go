// Package aging applies the slow decline of later life and retirement.
package aging

import (
	"fmt"

	"lifepath/internal/career"
	"lifepath/internal/model"
	"lifepath/internal/sim"
)

const (
	DeclineStart    = 40
	LooksStart      = 50
	WisdomStart     = 50
	MemoryStart     = 60
	RetirementStart = 65

	looksChance  = 0.3
	memoryChance = 0.2
	wisdomChance = 0.15

	physicalFloor = 10
	looksFloor    = 10
	smartsFloor   = 20

	// PensionRate is the share of the final salary paid out on retirement.
	PensionRate = 0.6
)

func floorAt(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

// Apply runs one year of age-related change. The returned character
// already carries every change; the events are for the log.
func Apply(env sim.Env, c model.Character) (model.Character, []model.Event) {
	if c.Age < DeclineStart {
		return c, nil
	}
	c = c.Clone()
	var out []model.Event

	intensity := (c.Age - DeclineStart) / 10
	decline := env.Intn(intensity + 1)
	c.Stats.PhysicalHealth = floorAt(c.Stats.PhysicalHealth-decline, physicalFloor)
	if decline >= 3 {
		out = append(out, env.Event(c.Age, "Feeling Your Age",
			"Your body is starting to show signs of aging. You feel less energetic than before.",
			model.Delta{model.StatPhysicalHealth: -decline}, model.EventNegative, model.CategoryHealth))
	}

	if c.Age >= LooksStart && env.Chance(looksChance) {
		c.Stats.Looks = floorAt(c.Stats.Looks-(env.Intn(2)+1), looksFloor)
	}

	if c.Age >= MemoryStart && env.Chance(memoryChance) {
		loss := env.Intn(2) + 1
		c.Stats.Smarts = floorAt(c.Stats.Smarts-loss, smartsFloor)
		out = append(out, env.Event(c.Age, "Memory Lapses",
			"You've been forgetting things more often lately.",
			model.Delta{model.StatSmarts: -loss}, model.EventNegative, model.CategoryHealth))
	}

	if c.Age >= WisdomStart && env.Chance(wisdomChance) {
		gain := env.IntRange(1, 3)
		c.Stats.Reputation = model.Clamp(c.Stats.Reputation + gain)
		out = append(out, env.Event(c.Age, "Gained Wisdom",
			"Your life experience has made you wiser. People respect your opinions more.",
			model.Delta{model.StatReputation: gain}, model.EventPositive, model.CategoryGeneral))
	}

	if c.Age >= RetirementStart && c.Career.HasJob && env.Chance(env.Policy.RetirementChance) {
		var ev model.Event
		c, ev = Retire(env, c)
		out = append(out, ev)
	}
	return c, out
}

// Retire ends employment and pays the pension into savings.
func Retire(env sim.Env, c model.Character) (model.Character, model.Event) {
	salary := c.Career.Salary
	if salary <= 0 {
		salary = career.DefaultSalary
	}
	pension := int(float64(salary) * PensionRate)

	c = career.LeaveJob(c)
	c.Career.IsRetired = true
	c.Career.Pension = pension
	c.Finances.Savings += pension
	c.Stats.Happiness = model.Clamp(c.Stats.Happiness + 10)

	ev := env.Event(c.Age, "Retired",
		fmt.Sprintf("You decided to retire and enjoy your golden years. You received a retirement package of %s.", model.Dollars(pension)),
		model.Delta{model.StatHappiness: 10}, model.EventPositive, model.CategoryCareer)
	return c, ev
}
