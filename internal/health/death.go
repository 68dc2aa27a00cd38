package health

import (
	"lifepath/internal/model"
	"lifepath/internal/sim"
)

// Accidents label sudden deaths before 60.
var Accidents = []string{"Car accident", "Heart attack", "Stroke", "Accident"}

const (
	CauseNatural  = "Natural causes"
	CauseOverdose = "Drug overdose"
	CauseSuicide  = "Suicide"
)

func baseDeathRate(age int) float64 {
	switch {
	case age > 90:
		return 0.15
	case age > 80:
		return 0.08
	case age > 70:
		return 0.04
	case age > 60:
		return 0.02
	case age > 40:
		return 0.01
	}
	return 0.005
}

func fatalDiseases(c model.Character) []model.Disease {
	var out []model.Disease
	for _, d := range c.Diseases {
		if d.IsFatal {
			out = append(out, d)
		}
	}
	return out
}

// DeathProbability is the per-tick chance that c dies.
func DeathProbability(c model.Character) float64 {
	p := baseDeathRate(c.Age)

	switch {
	case c.Stats.PhysicalHealth < 20:
		p *= 3
	case c.Stats.PhysicalHealth < 40:
		p *= 2
	}
	if c.Stats.MentalHealth < 20 {
		p *= 1.5
	}
	p += float64(len(fatalDiseases(c))) * 0.02
	if c.Stats.Addictions > 80 {
		p *= 2
	}
	p *= 2 - float64(c.Genetics.LongevityGenes)/100
	return p
}

// CheckDeath makes the single death draw and, on death, attributes a cause.
func CheckDeath(env sim.Env, c model.Character) (bool, string) {
	if !env.Chance(DeathProbability(c)) {
		return false, ""
	}
	if fatal := fatalDiseases(c); len(fatal) > 0 {
		return true, fatal[0].Name
	}
	if c.Stats.Addictions > 80 {
		return true, CauseOverdose
	}
	if c.Stats.MentalHealth < 20 && env.Chance(0.3) {
		return true, CauseSuicide
	}
	if c.Age < 60 && env.Chance(0.4) {
		return true, sim.Pick(env, Accidents)
	}
	return true, CauseNatural
}
