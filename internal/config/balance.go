package config

import (
	"strings"

	"lifepath/internal/sim"
)

// Difficulty presets.
const (
	DifficultyNormal = "normal"
	DifficultyCasual = "casual"
	DifficultyHard   = "hard"
)

// Default returns the stock probabilities.
func Default() sim.Policy {
	return sim.DefaultPolicy()
}

// Casual makes trouble rarer and success likelier.
func Casual() sim.Policy {
	p := Default()
	p.CheatDetection = 0.25
	p.TeenCrimeCatch = 0.4
	p.DrugCatch = 0.2
	p.DrugBadReaction = 0.1
	p.SneakOutCatch = 0.25
	p.JobBaseChance = 0.65
	p.PromotionFactor = 0.75
	p.AskMoneyFactor = 0.85
	p.CrimeCaptureChance = 0.2
	p.EscapeBase = 0.2
	p.BribeSuccess = 0.55
	return p
}

// Hard is for players who want every mistake to cost.
func Hard() sim.Policy {
	p := Default()
	p.CheatDetection = 0.6
	p.TeenCrimeCatch = 0.75
	p.DrugCatch = 0.45
	p.DrugBadReaction = 0.3
	p.SneakOutCatch = 0.55
	p.JobBaseChance = 0.35
	p.PromotionFactor = 0.45
	p.AskMoneyFactor = 0.5
	p.CrimeCaptureChance = 0.45
	p.WantedPenalty = 0.08
	p.EscapeBase = 0.05
	p.BribeSuccess = 0.25
	p.FamilyMortalityStart = 65
	return p
}

// Preset resolves a difficulty name; empty means normal.
func Preset(name string) (sim.Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DifficultyNormal:
		return Default(), true
	case DifficultyCasual:
		return Casual(), true
	case DifficultyHard:
		return Hard(), true
	}
	return sim.Policy{}, false
}

// overlay returns base with every non-zero field of p applied on top.
func overlay(base, p sim.Policy) sim.Policy {
	set := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	set(&base.CheatDetection, p.CheatDetection)
	set(&base.TeenCrimeCatch, p.TeenCrimeCatch)
	set(&base.DrugCatch, p.DrugCatch)
	set(&base.DrugBadReaction, p.DrugBadReaction)
	set(&base.SneakOutCatch, p.SneakOutCatch)
	set(&base.PregnancyChance, p.PregnancyChance)
	set(&base.JobBaseChance, p.JobBaseChance)
	set(&base.PromotionFactor, p.PromotionFactor)
	set(&base.AskMoneyFactor, p.AskMoneyFactor)
	set(&base.CrimeCaptureChance, p.CrimeCaptureChance)
	set(&base.CrimeSuccessFloor, p.CrimeSuccessFloor)
	set(&base.WantedPenalty, p.WantedPenalty)
	set(&base.EscapeBase, p.EscapeBase)
	set(&base.BribeSuccess, p.BribeSuccess)
	set(&base.RetirementChance, p.RetirementChance)
	if p.FamilyMortalityStart != 0 {
		base.FamilyMortalityStart = p.FamilyMortalityStart
	}
	return base
}
