// Package character creates a new life at age zero.
package character

import (
	"fmt"

	"lifepath/internal/education"
	"lifepath/internal/health"
	"lifepath/internal/model"
	"lifepath/internal/sim"
)

var FirstNames = map[model.Gender][]string{
	model.Male:   {"James", "John", "Robert", "Michael", "David", "William", "Richard", "Joseph", "Thomas", "Christopher", "Charles", "Daniel", "Matthew", "Anthony", "Mark", "Donald", "Steven", "Paul", "Andrew", "Joshua"},
	model.Female: {"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Betty", "Helen", "Sandra", "Donna", "Carol", "Ruth", "Sharon", "Michelle"},
}

var LastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin"}

var Countries = []string{"United States", "Canada", "United Kingdom", "Australia", "Germany", "France", "Italy", "Spain", "Japan", "South Korea", "Brazil", "Mexico", "Argentina", "India", "China", "Russia", "Sweden", "Norway", "Denmark", "Netherlands"}

const (
	birthTitle   = "Born!"
	maxSiblings  = 3
	minParentAge = 20
	maxParentAge = 44
)

func randomGender(env sim.Env) model.Gender {
	if env.Chance(0.5) {
		return model.Male
	}
	return model.Female
}

func stat(env sim.Env) int {
	return env.IntRange(50, 99)
}

func member(env sim.Env, name string, rel model.Relation, age int) model.FamilyMember {
	return model.FamilyMember{
		ID:          env.NewID(),
		Name:        name,
		Relation:    rel,
		Age:         age,
		Closeness:   env.IntRange(50, 99),
		IsAlive:     true,
		Personality: sim.Pick(env, model.Personalities),
	}
}

func genetics(env sim.Env) model.Genetics {
	g := model.Genetics{
		HealthPredisposition:       env.IntRange(20, 80),
		MentalHealthPredisposition: env.IntRange(20, 80),
		AddictionPredisposition:    env.IntRange(20, 80),
		LongevityGenes:             env.IntRange(40, 99),
		DiseaseResistance:          make(map[string]int, len(health.Diseases)),
	}
	for _, d := range health.Diseases {
		g.DiseaseResistance[health.ResistanceKey(d.Name)] = env.IntRange(30, 89)
	}
	return g
}

// Generate creates a newborn with a randomized family, stats and genetics,
// and returns it together with its birth event.
func Generate(env sim.Env) (model.Character, model.Event) {
	gender := randomGender(env)
	first := sim.Pick(env, FirstNames[gender])
	last := sim.Pick(env, LastNames)

	mother := member(env, sim.Pick(env, FirstNames[model.Female])+" "+last, model.RelationMother, env.IntRange(minParentAge, maxParentAge))
	father := member(env, sim.Pick(env, FirstNames[model.Male])+" "+last, model.RelationFather, env.IntRange(minParentAge, maxParentAge))

	n := env.Intn(maxSiblings + 1)
	siblings := make([]model.FamilyMember, 0, n)
	for i := 0; i < n; i++ {
		g := randomGender(env)
		siblings = append(siblings, member(env, sim.Pick(env, FirstNames[g])+" "+last, model.RelationSibling, env.IntRange(0, 9)))
	}

	hp := stat(env)
	c := model.Character{
		ID:        env.NewID(),
		Name:      first + " " + last,
		Gender:    gender,
		Country:   sim.Pick(env, Countries),
		CreatedAt: env.Now(),
		Stats: model.Stats{
			Health:         hp,
			PhysicalHealth: hp,
			MentalHealth:   stat(env),
			Smarts:         stat(env),
			Looks:          stat(env),
			Happiness:      stat(env),
			Reputation:     50,
		},
		Family:         model.Family{Mother: mother, Father: father, Siblings: siblings},
		Relationships:  []model.Relationship{},
		Children:       []model.Child{},
		Education:      education.Initial(),
		Achievements:   []model.Achievement{},
		Career:         model.Career{JobsHeld: []string{}},
		Diseases:       []model.Disease{},
		Insurance:      health.DefaultInsurance(),
		Genetics:       genetics(env),
		CriminalRecord: []model.CriminalRecord{},
		CriminalStatus: model.DefaultCriminalStatus(),
		PrisonRecord:   []model.PrisonRecord{},
		Finances:       model.DefaultFinances(),
		Will:           model.Will{Beneficiaries: []model.Beneficiary{}, CharityDonations: []model.CharityDonation{}},
		IsAlive:        true,
	}

	ev := env.Event(0, birthTitle,
		fmt.Sprintf("You were born in %s to %s and %s.", c.Country, mother.Name, father.Name),
		nil, model.EventPositive, model.CategoryGeneral)
	return c, ev
}
