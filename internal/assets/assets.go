// Package assets is the catalogue of things a character can own and the
// rules for buying, selling and valuing them.
package assets

import (
	"fmt"
	"math"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

type Requirements struct {
	MinAge   int  `json:"minAge,omitempty"`
	MinMoney int  `json:"minMoney,omitempty"`
	License  bool `json:"license,omitempty"`
}

type Template struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Type               model.AssetType `json:"type"`
	Category           string          `json:"category"`
	BasePrice          int             `json:"basePrice"`
	MonthlyMaintenance int             `json:"monthlyMaintenance"`
	Description        string          `json:"description"`
	Requirements       Requirements    `json:"requirements"`
}

var Templates = []Template{
	{
		ID:                 "studio_apartment",
		Name:               "Studio Apartment",
		Type:               model.AssetRealEstate,
		Category:           "Apartment",
		BasePrice:          150000,
		MonthlyMaintenance: 800,
		Description:        "A small but cozy studio apartment in the city.",
		Requirements:       Requirements{MinAge: 18, MinMoney: 30000},
	},
	{
		ID:                 "family_home",
		Name:               "Family Home",
		Type:               model.AssetRealEstate,
		Category:           "House",
		BasePrice:          350000,
		MonthlyMaintenance: 1500,
		Description:        "A comfortable 3-bedroom family home with a yard.",
		Requirements:       Requirements{MinAge: 21, MinMoney: 70000},
	},
	{
		ID:                 "luxury_mansion",
		Name:               "Luxury Mansion",
		Type:               model.AssetRealEstate,
		Category:           "Mansion",
		BasePrice:          2500000,
		MonthlyMaintenance: 8000,
		Description:        "An opulent mansion with 10 bedrooms and a pool.",
		Requirements:       Requirements{MinAge: 25, MinMoney: 500000},
	},
	{
		ID:                 "bicycle",
		Name:               "Mountain Bike",
		Type:               model.AssetVehicle,
		Category:           "Bike",
		BasePrice:          800,
		MonthlyMaintenance: 20,
		Description:        "A reliable mountain bike for daily commuting.",
		Requirements:       Requirements{MinAge: 12},
	},
	{
		ID:                 "economy_car",
		Name:               "Economy Car",
		Type:               model.AssetVehicle,
		Category:           "Car",
		BasePrice:          18000,
		MonthlyMaintenance: 300,
		Description:        "A fuel-efficient compact car perfect for city driving.",
		Requirements:       Requirements{MinAge: 16, License: true},
	},
	{
		ID:                 "sports_car",
		Name:               "Sports Car",
		Type:               model.AssetVehicle,
		Category:           "Sports Car",
		BasePrice:          85000,
		MonthlyMaintenance: 800,
		Description:        "A sleek sports car that turns heads on the street.",
		Requirements:       Requirements{MinAge: 18, MinMoney: 20000, License: true},
	},
	{
		ID:                 "yacht",
		Name:               "Luxury Yacht",
		Type:               model.AssetVehicle,
		Category:           "Boat",
		BasePrice:          1200000,
		MonthlyMaintenance: 5000,
		Description:        "A magnificent yacht for ocean adventures.",
		Requirements:       Requirements{MinAge: 25, MinMoney: 250000},
	},
	{
		ID:           "crypto_portfolio",
		Name:         "Cryptocurrency Portfolio",
		Type:         model.AssetMisc,
		Category:     "Investment",
		BasePrice:    5000,
		Description:  "A diversified portfolio of various cryptocurrencies.",
		Requirements: Requirements{MinAge: 18, MinMoney: 1000},
	},
	{
		ID:           "diamond_necklace",
		Name:         "Diamond Necklace",
		Type:         model.AssetMisc,
		Category:     "Jewelry",
		BasePrice:    25000,
		Description:  "An exquisite diamond necklace that sparkles brilliantly.",
		Requirements: Requirements{MinAge: 18, MinMoney: 5000},
	},
	{
		ID:                 "golden_retriever",
		Name:               "Golden Retriever",
		Type:               model.AssetMisc,
		Category:           "Pet",
		BasePrice:          1500,
		MonthlyMaintenance: 200,
		Description:        "A loyal and friendly golden retriever companion.",
		Requirements:       Requirements{MinAge: 16},
	},
}

func Find(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

func Eligible(c model.Character, t Template) bool {
	r := t.Requirements
	switch {
	case c.Age < r.MinAge:
		return false
	case c.Stats.Money < r.MinMoney:
		return false
	case r.License && !c.HasLicense():
		return false
	}
	return true
}

func Available(c model.Character) []Template {
	var out []Template
	for _, t := range Templates {
		if Eligible(c, t) {
			out = append(out, t)
		}
	}
	return out
}

func happinessFor(t model.AssetType) int {
	switch t {
	case model.AssetRealEstate:
		return 15
	case model.AssetVehicle:
		return 10
	}
	return 5
}

// Purchase buys template id at its base price give or take 10%. When the
// price turns out to be unaffordable the feedback event is returned along
// with ErrInsufficientFunds and c is unchanged.
func Purchase(env sim.Env, c model.Character, id string) (model.Character, model.Event, error) {
	t, ok := Find(id)
	if !ok {
		return c, model.Event{}, fmt.Errorf("%w: asset %q", model.ErrNotFound, id)
	}
	if !Eligible(c, t) {
		return c, model.Event{}, fmt.Errorf("%w: %s", model.ErrNotQualified, t.Name)
	}

	price := int(float64(t.BasePrice) * env.FloatRange(0.9, 1.1))
	if c.Stats.Money < price {
		ev := env.Event(c.Age, "Purchase Failed",
			fmt.Sprintf("You don't have enough money to buy the %s. You need %s.", t.Name, model.Dollars(price)),
			model.Delta{model.StatHappiness: -3}, model.EventNegative, model.CategoryAssets)
		return c, ev, fmt.Errorf("%w: %s costs %s", model.ErrInsufficientFunds, t.Name, model.Dollars(price))
	}

	c = c.Clone()
	c.Stats.Money -= price
	c.Finances.Assets = append(c.Finances.Assets, model.OwnedAsset{
		ID:                 env.NewID(),
		TemplateID:         t.ID,
		Type:               t.Type,
		Name:               t.Name,
		Category:           t.Category,
		Description:        t.Description,
		PurchasePrice:      price,
		CurrentValue:       price,
		PurchasedAt:        c.Age,
		MonthlyMaintenance: t.MonthlyMaintenance,
	})

	changes := model.Delta{model.StatHappiness: happinessFor(t.Type), model.StatReputation: 3}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Asset Purchased",
		fmt.Sprintf("You bought a %s for %s!", t.Name, model.Dollars(price)),
		changes, model.EventPositive, model.CategoryAssets)
	return c, ev, nil
}

// DepreciationRate is the yearly loss of value used when selling.
func DepreciationRate(t model.AssetType) float64 {
	switch t {
	case model.AssetRealEstate:
		return 0.02
	case model.AssetVehicle:
		return 0.15
	}
	return 0.1
}

// ResaleValue depreciates the purchase price over the years owned, never
// below a tenth of it.
func ResaleValue(a model.OwnedAsset, age int) float64 {
	years := float64(age - a.PurchasedAt)
	price := float64(a.PurchasePrice)
	return max(price*0.1, price*math.Pow(1-DepreciationRate(a.Type), years))
}

func findOwned(c model.Character, id string) (int, bool) {
	for i, a := range c.Finances.Assets {
		if a.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Sell sells an owned asset at 80-100% of its resale value.
func Sell(env sim.Env, c model.Character, id string) (model.Character, model.Event, error) {
	i, ok := findOwned(c, id)
	if !ok {
		return c, model.Event{}, model.ErrAssetNotOwned
	}
	a := c.Finances.Assets[i]
	price := int(ResaleValue(a, c.Age) * env.FloatRange(0.8, 1.0))

	c = c.Clone()
	c.Finances.Assets = append(c.Finances.Assets[:i], c.Finances.Assets[i+1:]...)
	c.Stats.Money += price

	profit := price - a.PurchasePrice
	outcome := "Profit: " + model.Dollars(profit)
	changes := model.Delta{model.StatHappiness: 5}
	typ := model.EventPositive
	if profit < 0 {
		outcome = "Loss: " + model.Dollars(-profit)
		changes = model.Delta{model.StatHappiness: -5}
		typ = model.EventNegative
	}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Asset Sold",
		fmt.Sprintf("You sold your %s for %s. %s", a.Name, model.Dollars(price), outcome),
		changes, typ, model.CategoryAssets)
	return c, ev, nil
}

// Drift moves every asset's value by up to 5% either way, floored at a
// tenth of its purchase price.
func Drift(env sim.Env, c model.Character) model.Character {
	if len(c.Finances.Assets) == 0 {
		return c
	}
	c = c.Clone()
	for i := range c.Finances.Assets {
		a := &c.Finances.Assets[i]
		v := int(float64(a.CurrentValue) * env.FloatRange(0.95, 1.05))
		a.CurrentValue = max(a.PurchasePrice/10, v)
	}
	return c
}

func AssetValue(c model.Character) int {
	total := 0
	for _, a := range c.Finances.Assets {
		total += a.CurrentValue
	}
	return total
}

// NetWorth is cash, savings, investments and assets less debt.
func NetWorth(c model.Character) int {
	f := c.Finances
	return c.Stats.Money + f.Savings + f.Investments + AssetValue(c) - f.Debt
}

// MonthlyExpenses is the upkeep of everything owned.
func MonthlyExpenses(c model.Character) int {
	total := 0
	for _, a := range c.Finances.Assets {
		total += a.MonthlyMaintenance
	}
	return total
}
