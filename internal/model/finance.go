package model

import "strconv"

type AssetType string

const (
	AssetRealEstate AssetType = "real_estate"
	AssetVehicle    AssetType = "vehicle"
	AssetMisc       AssetType = "misc"
)

type OwnedAsset struct {
	ID                 string    `json:"id"`
	TemplateID         string    `json:"templateId,omitempty"`
	Type               AssetType `json:"type"`
	Name               string    `json:"name"`
	Category           string    `json:"category"`
	Description        string    `json:"description"`
	PurchasePrice      int       `json:"purchasePrice"`
	CurrentValue       int       `json:"currentValue"`
	PurchasedAt        int       `json:"purchasedAt"`
	MonthlyMaintenance int       `json:"monthlyMaintenance"`
}

// DefaultMonthlyExpenses is the fixed living cost of a new life.
const DefaultMonthlyExpenses = 200

type Finances struct {
	Savings         int          `json:"savings"`
	Debt            int          `json:"debt"`
	Investments     int          `json:"investments"`
	MonthlyExpenses int          `json:"monthlyExpenses"`
	Assets          []OwnedAsset `json:"assets"`
}

func DefaultFinances() Finances {
	return Finances{
		MonthlyExpenses: DefaultMonthlyExpenses,
		Assets:          []OwnedAsset{},
	}
}

// Dollars formats n as whole dollars with thousands separators.
func Dollars(n int) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + "$" + s
}
