package game

import (
	"lifepath/internal/assets"
	"lifepath/internal/career"
	"lifepath/internal/health"
	"lifepath/internal/model"
)

func debit(c model.Character, amount int) model.Character {
	c.Stats.Money = max(0, c.Stats.Money-amount)
	return c
}

// Settle runs the yearly money flow: net pay for the employed, tuition,
// the insurance premium, and upkeep on owned assets for the unemployed.
// Money never drops below zero.
func Settle(c model.Character) model.Character {
	c = c.Clone()
	upkeep := assets.MonthlyExpenses(c)
	if c.Career.HasJob {
		net := c.Career.Salary/12 - (c.Finances.MonthlyExpenses + upkeep)
		c.Stats.Money = max(0, c.Stats.Money+net)
	}
	c = career.SettleTuition(c)
	c = debit(c, health.PremiumDue(c))
	if !c.Career.HasJob {
		c = debit(c, upkeep)
	}
	return c
}
