package sim

// Policy holds the hardcoded probabilities the rules depend on. None of
// them is derived from a balancing model; they are kept together so they
// can be reviewed and tuned without touching the rules.
type Policy struct {
	CheatDetection       float64 `yaml:"cheat_detection" json:"cheat_detection"`
	TeenCrimeCatch       float64 `yaml:"teen_crime_catch" json:"teen_crime_catch"`
	DrugCatch            float64 `yaml:"drug_catch" json:"drug_catch"`
	DrugBadReaction      float64 `yaml:"drug_bad_reaction" json:"drug_bad_reaction"`
	SneakOutCatch        float64 `yaml:"sneak_out_catch" json:"sneak_out_catch"`
	PregnancyChance      float64 `yaml:"pregnancy_chance" json:"pregnancy_chance"`
	JobBaseChance        float64 `yaml:"job_base_chance" json:"job_base_chance"`
	PromotionFactor      float64 `yaml:"promotion_factor" json:"promotion_factor"`
	AskMoneyFactor       float64 `yaml:"ask_money_factor" json:"ask_money_factor"`
	CrimeCaptureChance   float64 `yaml:"crime_capture_chance" json:"crime_capture_chance"`
	CrimeSuccessFloor    float64 `yaml:"crime_success_floor" json:"crime_success_floor"`
	WantedPenalty        float64 `yaml:"wanted_penalty" json:"wanted_penalty"`
	EscapeBase           float64 `yaml:"escape_base" json:"escape_base"`
	BribeSuccess         float64 `yaml:"bribe_success" json:"bribe_success"`
	RetirementChance     float64 `yaml:"retirement_chance" json:"retirement_chance"`
	FamilyMortalityStart int     `yaml:"family_mortality_start" json:"family_mortality_start"`
}

const (
	DefaultCheatDetection     = 0.4
	DefaultTeenCrimeCatch     = 0.6
	DefaultDrugCatch          = 0.3
	DefaultDrugBadReaction    = 0.2
	DefaultSneakOutCatch      = 0.4
	DefaultPregnancyChance    = 0.02
	DefaultJobBaseChance      = 0.5
	DefaultPromotionFactor    = 0.6
	DefaultAskMoneyFactor     = 0.7
	DefaultCrimeCaptureChance = 0.3
	DefaultCrimeSuccessFloor  = 0.05
	DefaultWantedPenalty      = 0.05
	DefaultEscapeBase         = 0.1
	DefaultBribeSuccess       = 0.4
	DefaultRetirementChance   = 0.3
	DefaultFamilyMortality    = 70
)

func DefaultPolicy() Policy {
	return Policy{
		CheatDetection:       DefaultCheatDetection,
		TeenCrimeCatch:       DefaultTeenCrimeCatch,
		DrugCatch:            DefaultDrugCatch,
		DrugBadReaction:      DefaultDrugBadReaction,
		SneakOutCatch:        DefaultSneakOutCatch,
		PregnancyChance:      DefaultPregnancyChance,
		JobBaseChance:        DefaultJobBaseChance,
		PromotionFactor:      DefaultPromotionFactor,
		AskMoneyFactor:       DefaultAskMoneyFactor,
		CrimeCaptureChance:   DefaultCrimeCaptureChance,
		CrimeSuccessFloor:    DefaultCrimeSuccessFloor,
		WantedPenalty:        DefaultWantedPenalty,
		EscapeBase:           DefaultEscapeBase,
		BribeSuccess:         DefaultBribeSuccess,
		RetirementChance:     DefaultRetirementChance,
		FamilyMortalityStart: DefaultFamilyMortality,
	}
}

// Fill replaces zero fields with defaults.
func (p Policy) Fill() Policy {
	d := DefaultPolicy()
	fill := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&p.CheatDetection, d.CheatDetection)
	fill(&p.TeenCrimeCatch, d.TeenCrimeCatch)
	fill(&p.DrugCatch, d.DrugCatch)
	fill(&p.DrugBadReaction, d.DrugBadReaction)
	fill(&p.SneakOutCatch, d.SneakOutCatch)
	fill(&p.PregnancyChance, d.PregnancyChance)
	fill(&p.JobBaseChance, d.JobBaseChance)
	fill(&p.PromotionFactor, d.PromotionFactor)
	fill(&p.AskMoneyFactor, d.AskMoneyFactor)
	fill(&p.CrimeCaptureChance, d.CrimeCaptureChance)
	fill(&p.CrimeSuccessFloor, d.CrimeSuccessFloor)
	fill(&p.WantedPenalty, d.WantedPenalty)
	fill(&p.EscapeBase, d.EscapeBase)
	fill(&p.BribeSuccess, d.BribeSuccess)
	fill(&p.RetirementChance, d.RetirementChance)
	if p.FamilyMortalityStart == 0 {
		p.FamilyMortalityStart = d.FamilyMortalityStart
	}
	return p
}
