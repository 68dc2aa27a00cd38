package teen

import (
	"fmt"
	"strings"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

var FirstJobTitles = []string{
	"Cashier at Local Store",
	"Fast Food Worker",
	"Movie Theater Usher",
	"Babysitter",
	"Dog Walker",
	"Lawn Care Assistant",
	"Library Helper",
	"Grocery Bagger",
}

// FirstJobBonus is paid once when the first job starts.
const FirstJobBonus = 50

type Crime struct {
	Name       string
	Severity   string
	Punishment string
}

var Crimes = []Crime{
	{"Shoplifting", "minor", "Community Service"},
	{"Vandalism", "minor", "Grounded for 2 years"},
	{"Underage Drinking", "minor", "Suspended from School"},
	{"Fighting", "moderate", "Detention"},
	{"Drug Possession", "serious", "Juvenile Detention"},
	{"Car Theft", "serious", "Probation"},
}

const (
	MinPregnancyAge = 16
	maxRisk         = 100
)

func addRisk(c model.Character, n int) model.Character {
	c.RiskMeter = min(maxRisk, c.RiskMeter+n)
	return c
}

func ground(c model.Character, years int) model.Character {
	c.IsGrounded = true
	c.GroundedUntilAge = c.Age + years
	return c
}

func addRecord(env sim.Env, c model.Character, crime, punishment string) model.Character {
	c = c.Clone()
	c.CriminalRecord = append(c.CriminalRecord, model.CriminalRecord{
		ID:         env.NewID(),
		Crime:      crime,
		Age:        c.Age,
		Punishment: punishment,
		Timestamp:  env.Now(),
	})
	return c
}

// GetFirstJob starts a part-time job with a one-off signing bonus.
func GetFirstJob(env sim.Env, c model.Character) (model.Character, model.Event, error) {
	if c.Career.HasJob {
		return c, model.Event{}, model.ErrAlreadyEmployed
	}
	title := sim.Pick(env, FirstJobTitles)
	c = c.Clone()
	c.Career.HasJob = true
	c.Career.JobTitle = title
	c.Career.JobLevel = 1
	c.Career.JobPerformance = 50
	c.Career.JobsHeld = append(c.Career.JobsHeld, title)
	c.Stats.Money += FirstJobBonus

	changes := model.Delta{model.StatHappiness: 6, model.StatSmarts: 2}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Got First Job",
		fmt.Sprintf("You got your first job as a %s! You're excited to start earning your own money.", title),
		changes, model.EventPositive, model.CategoryCareer)
	return c, ev, nil
}

// CommitCrime is the teenage crime: a random petty offence caught with the
// policy's teen catch rate.
func CommitCrime(env sim.Env, c model.Character) (model.Character, model.Event) {
	crime := sim.Pick(env, Crimes)
	lower := strings.ToLower(crime.Name)

	var (
		changes     model.Delta
		title, desc string
	)
	if env.Chance(env.Policy.TeenCrimeCatch) {
		c = addRecord(env, c, crime.Name, crime.Punishment)
		c = addRisk(c, 20)
		if strings.Contains(crime.Punishment, "Grounded") {
			c = ground(c, 2)
		}
		changes = model.Delta{model.StatHappiness: -10, model.StatReputation: -15, model.StatHealth: -5}
		title = "Caught: " + crime.Name
		desc = fmt.Sprintf("You were caught committing %s! Your punishment: %s.", lower, crime.Punishment)
	} else {
		c = addRisk(c, 10)
		changes = model.Delta{model.StatHappiness: 3, model.StatReputation: -2}
		title = crime.Name
		desc = fmt.Sprintf("You committed %s and got away with it, but you feel guilty.", lower)
	}
	c = c.ApplyDelta(changes)
	return c, env.Event(c.Age, title, desc, changes, model.EventNegative, model.CategoryTeen)
}

// TryDrugs always draws both the catch and the bad-reaction outcomes; getting
// caught takes precedence.
func TryDrugs(env sim.Env, c model.Character) (model.Character, model.Event) {
	caught := env.Chance(env.Policy.DrugCatch)
	badReaction := env.Chance(env.Policy.DrugBadReaction)
	c = addRisk(c, 25)

	var (
		changes     model.Delta
		title, desc string
	)
	switch {
	case caught:
		c = addRecord(env, c, "Drug Use", "Suspended from School")
		c = ground(c, 1)
		changes = model.Delta{model.StatHappiness: -15, model.StatReputation: -20, model.StatHealth: -10}
		title = "Caught Using Drugs"
		desc = "You tried drugs but got caught by school authorities. You were suspended and your parents grounded you."
	case badReaction:
		changes = model.Delta{model.StatHappiness: -8, model.StatHealth: -15, model.StatReputation: -5}
		title = "Bad Drug Experience"
		desc = "You tried drugs but had a bad reaction. You felt sick and regretted the decision."
	default:
		changes = model.Delta{model.StatHappiness: 5, model.StatHealth: -3, model.StatReputation: -2}
		title = "Tried Drugs"
		desc = "You experimented with drugs. It was a temporary high but you know it was risky."
	}
	c = c.ApplyDelta(changes)
	return c, env.Event(c.Age, title, desc, changes, model.EventNegative, model.CategoryTeen)
}

func SneakOut(env sim.Env, c model.Character) (model.Character, model.Event) {
	c = addRisk(c, 10)
	if env.Chance(env.Policy.SneakOutCatch) {
		c = ground(c, 1)
		changes := model.Delta{model.StatHappiness: -8, model.StatReputation: -3}
		c = c.ApplyDelta(changes)
		return c, env.Event(c.Age, "Caught Sneaking Out",
			"You tried to sneak out but your parents caught you! You're grounded for a year.",
			changes, model.EventNegative, model.CategoryTeen)
	}
	changes := model.Delta{model.StatHappiness: 8, model.StatReputation: 2}
	c = c.ApplyDelta(changes)
	return c, env.Event(c.Age, "Snuck Out",
		"You successfully snuck out and had an amazing night with friends!",
		changes, model.EventPositive, model.CategoryTeen)
}

// CheckPregnancy may start a pregnancy due at the next birthday. It returns
// nil without drawing when the character is not eligible.
func CheckPregnancy(env sim.Env, c model.Character) (model.Character, *model.Event) {
	if c.Gender != model.Female || c.Age < MinPregnancyAge || c.IsPregnant {
		return c, nil
	}
	if _, ok := c.ActiveRelationship(); !ok {
		return c, nil
	}
	if !env.Chance(env.Policy.PregnancyChance) {
		return c, nil
	}
	c.IsPregnant = true
	c.PregnancyDueAge = c.Age + 1
	changes := model.Delta{model.StatHappiness: -10, model.StatHealth: -5, model.StatReputation: -15}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Pregnant", "You discovered you're pregnant! This will change everything.",
		changes, model.EventNegative, model.CategoryFamily)
	return c, &ev
}

// UpdateGrounded lifts a grounding that has run its course.
func UpdateGrounded(c model.Character) model.Character {
	if c.IsGrounded && c.Age >= c.GroundedUntilAge {
		c.IsGrounded = false
		c.GroundedUntilAge = 0
	}
	return c
}
