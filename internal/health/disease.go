// Package health rolls diseases, prices treatment and decides death.
package health

import (
	"fmt"
	"strings"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

// DiseaseTemplate is one row of the disease table.
type DiseaseTemplate struct {
	Name          string
	Type          model.DiseaseType
	Severity      model.Severity
	IsCurable     bool
	IsFatal       bool
	TreatmentCost int
	StatEffects   model.Delta
	Description   string
	Symptoms      []string
	Probability   float64
}

var Diseases = []DiseaseTemplate{
	{
		Name: "Common Cold", Type: model.DiseasePhysical, Severity: model.SeverityMild,
		IsCurable: true, TreatmentCost: 50,
		StatEffects: model.Delta{model.StatPhysicalHealth: -5, model.StatHappiness: -3},
		Description: "A viral infection causing runny nose and fatigue.",
		Symptoms:    []string{"Runny nose", "Cough", "Fatigue"},
		Probability: 0.15,
	},
	{
		Name: "Flu", Type: model.DiseasePhysical, Severity: model.SeverityModerate,
		IsCurable: true, TreatmentCost: 150,
		StatEffects: model.Delta{model.StatPhysicalHealth: -15, model.StatHappiness: -8},
		Description: "Influenza virus causing fever and body aches.",
		Symptoms:    []string{"Fever", "Body aches", "Severe fatigue"},
		Probability: 0.08,
	},
	{
		Name: "Pneumonia", Type: model.DiseasePhysical, Severity: model.SeveritySevere,
		IsCurable: true, IsFatal: true, TreatmentCost: 2500,
		StatEffects: model.Delta{model.StatPhysicalHealth: -25, model.StatHappiness: -15},
		Description: "Serious lung infection requiring immediate treatment.",
		Symptoms:    []string{"Difficulty breathing", "Chest pain", "High fever"},
		Probability: 0.03,
	},
	{
		Name: "Cancer", Type: model.DiseasePhysical, Severity: model.SeverityTerminal,
		IsFatal: true, TreatmentCost: 50000,
		StatEffects: model.Delta{model.StatPhysicalHealth: -40, model.StatHappiness: -25, model.StatMoney: -10000},
		Description: "Malignant tumor requiring extensive treatment.",
		Symptoms:    []string{"Unexplained weight loss", "Fatigue", "Pain"},
		Probability: 0.01,
	},
	{
		Name: "Heart Disease", Type: model.DiseasePhysical, Severity: model.SeveritySevere,
		IsFatal: true, TreatmentCost: 15000,
		StatEffects: model.Delta{model.StatPhysicalHealth: -30, model.StatHappiness: -10},
		Description: "Cardiovascular condition affecting heart function.",
		Symptoms:    []string{"Chest pain", "Shortness of breath", "Fatigue"},
		Probability: 0.02,
	},
	{
		Name: "Depression", Type: model.DiseaseMental, Severity: model.SeverityModerate,
		IsCurable: true, TreatmentCost: 1200,
		StatEffects: model.Delta{model.StatMentalHealth: -20, model.StatHappiness: -25},
		Description: "Persistent sadness and loss of interest.",
		Symptoms:    []string{"Persistent sadness", "Loss of interest", "Sleep problems"},
		Probability: 0.06,
	},
	{
		Name: "Anxiety Disorder", Type: model.DiseaseMental, Severity: model.SeverityModerate,
		IsCurable: true, TreatmentCost: 1000,
		StatEffects: model.Delta{model.StatMentalHealth: -15, model.StatHappiness: -15},
		Description: "Excessive worry and fear affecting daily life.",
		Symptoms:    []string{"Excessive worry", "Panic attacks", "Restlessness"},
		Probability: 0.08,
	},
	{
		Name: "Bipolar Disorder", Type: model.DiseaseMental, Severity: model.SeveritySevere,
		TreatmentCost: 2500,
		StatEffects:   model.Delta{model.StatMentalHealth: -25, model.StatHappiness: -20, model.StatReputation: -5},
		Description:   "Extreme mood swings between mania and depression.",
		Symptoms:      []string{"Extreme mood swings", "Manic episodes", "Depression"},
		Probability:   0.02,
	},
	{
		Name: "Alcohol Addiction", Type: model.DiseaseAddiction, Severity: model.SeveritySevere,
		IsCurable: true, TreatmentCost: 5000,
		StatEffects: model.Delta{model.StatAddictions: 30, model.StatPhysicalHealth: -15, model.StatMentalHealth: -10},
		Description: "Dependency on alcohol affecting health and relationships.",
		Symptoms:    []string{"Craving alcohol", "Withdrawal symptoms", "Loss of control"},
		Probability: 0.04,
	},
	{
		Name: "Drug Addiction", Type: model.DiseaseAddiction, Severity: model.SeveritySevere,
		IsCurable: true, IsFatal: true, TreatmentCost: 8000,
		StatEffects: model.Delta{model.StatAddictions: 40, model.StatPhysicalHealth: -20, model.StatMentalHealth: -15, model.StatReputation: -20},
		Description: "Dependency on illegal substances.",
		Symptoms:    []string{"Drug cravings", "Risky behavior", "Social isolation"},
		Probability: 0.02,
	},
	{
		Name: "Chlamydia", Type: model.DiseaseSTD, Severity: model.SeverityMild,
		IsCurable: true, TreatmentCost: 200,
		StatEffects: model.Delta{model.StatPhysicalHealth: -5, model.StatReputation: -10},
		Description: "Common sexually transmitted infection.",
		Symptoms:    []string{"Burning sensation", "Discharge", "Pain"},
		Probability: 0.03,
	},
	{
		Name: "HIV", Type: model.DiseaseSTD, Severity: model.SeverityTerminal,
		IsFatal: true, TreatmentCost: 25000,
		StatEffects: model.Delta{model.StatPhysicalHealth: -35, model.StatMentalHealth: -20, model.StatReputation: -15},
		Description: "Human immunodeficiency virus affecting immune system.",
		Symptoms:    []string{"Fatigue", "Weight loss", "Frequent infections"},
		Probability: 0.005,
	},
}

// DefaultResistance applies when genetics carry no value for a disease.
const DefaultResistance = 50

// ResistanceKey is the genetics map key for a disease name: lower case
// with the first space removed.
func ResistanceKey(name string) string {
	return strings.Replace(strings.ToLower(name), " ", "", 1)
}

func resistance(c model.Character, name string) int {
	if v := c.Genetics.DiseaseResistance[ResistanceKey(name)]; v > 0 {
		return v
	}
	return DefaultResistance
}

func ageFactor(age int) float64 {
	switch {
	case age > 60:
		return 2
	case age > 40:
		return 1.5
	case age < 18:
		return 0.5
	}
	return 1
}

// ContractionChance is the per-tick probability that c contracts d.
func ContractionChance(c model.Character, d DiseaseTemplate) float64 {
	p := d.Probability * (1 - float64(resistance(c, d.Name))/100)
	health := (100-float64(c.Stats.PhysicalHealth))/100 + 1
	return p * ageFactor(c.Age) * health
}

// RollDisease draws once per disease not already present and returns at most
// one newly contracted disease.
func RollDisease(env sim.Env, c model.Character) (model.Disease, bool) {
	candidates := make([]DiseaseTemplate, 0, len(Diseases))
	for _, d := range Diseases {
		if !c.HasDisease(d.Name) {
			candidates = append(candidates, d)
		}
	}
	picked, ok := sim.RollEach(env, candidates, func(d DiseaseTemplate) float64 {
		return ContractionChance(c, d)
	})
	if !ok {
		return model.Disease{}, false
	}
	return picked.instantiate(env, c.Age), true
}

func (d DiseaseTemplate) instantiate(env sim.Env, age int) model.Disease {
	return model.Disease{
		ID:            env.NewID(),
		Name:          d.Name,
		Type:          d.Type,
		Severity:      d.Severity,
		ContractedAt:  age,
		IsCurable:     d.IsCurable,
		IsFatal:       d.IsFatal,
		TreatmentCost: d.TreatmentCost,
		StatEffects:   d.StatEffects.Clone(),
		Description:   d.Description,
		Symptoms:      append([]string(nil), d.Symptoms...),
	}
}

// Contract adds d to c, applies its effects and reports it.
func Contract(env sim.Env, c model.Character, d model.Disease) (model.Character, model.Event) {
	c = c.Clone()
	c.Diseases = append(c.Diseases, d)
	c = c.ApplyDeltaFloored(d.StatEffects)
	ev := env.Event(c.Age, "Diagnosed: "+d.Name,
		fmt.Sprintf("You were diagnosed with %s. %s", d.Name, d.Description),
		d.StatEffects, model.EventNegative, model.CategoryHealth)
	return c, ev
}

// Tick rolls for a new disease and applies it.
func Tick(env sim.Env, c model.Character) (model.Character, *model.Event) {
	d, ok := RollDisease(env, c)
	if !ok {
		return c, nil
	}
	c, ev := Contract(env, c, d)
	return c, &ev
}

// FindTemplate looks a disease up by name.
func FindTemplate(name string) (DiseaseTemplate, bool) {
	for _, d := range Diseases {
		if d.Name == name {
			return d, true
		}
	}
	return DiseaseTemplate{}, false
}
