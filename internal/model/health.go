package model

type DiseaseType string

const (
	DiseasePhysical  DiseaseType = "physical"
	DiseaseMental    DiseaseType = "mental"
	DiseaseAddiction DiseaseType = "addiction"
	DiseaseSTD       DiseaseType = "std"
)

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityTerminal Severity = "terminal"
)

type Disease struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Type          DiseaseType `json:"type"`
	Severity      Severity    `json:"severity"`
	ContractedAt  int         `json:"contractedAt"`
	IsCurable     bool        `json:"isCurable"`
	IsFatal       bool        `json:"isFatal"`
	TreatmentCost int         `json:"treatmentCost"`
	StatEffects   Delta       `json:"statEffects"`
	Description   string      `json:"description"`
	Symptoms      []string    `json:"symptoms"`
}

type InsuranceType string

const (
	InsuranceGovernment InsuranceType = "government"
	InsurancePrivate    InsuranceType = "private"
	InsuranceUninsured  InsuranceType = "uninsured"
)

type Insurance struct {
	Type           InsuranceType `json:"type"`
	Coverage       int           `json:"coverage"`
	MonthlyPremium int           `json:"monthlyPremium"`
	Deductible     int           `json:"deductible"`
}

// OutOfPocket is what the insured pays for a bill of cost.
func (i Insurance) OutOfPocket(cost int) int {
	covered := float64(cost) * (1 - float64(i.Coverage)/100)
	out := int(covered + 0.5)
	if out < i.Deductible {
		out = i.Deductible
	}
	return out
}

type Genetics struct {
	HealthPredisposition       int            `json:"healthPredisposition"`
	MentalHealthPredisposition int            `json:"mentalHealthPredisposition"`
	AddictionPredisposition    int            `json:"addictionPredisposition"`
	LongevityGenes             int            `json:"longevityGenes"`
	DiseaseResistance          map[string]int `json:"diseaseResistance"`
}
