package model

// StatKey names one field of the stat block.
type StatKey string

const (
	StatHealth         StatKey = "health"
	StatPhysicalHealth StatKey = "physicalHealth"
	StatMentalHealth   StatKey = "mentalHealth"
	StatAddictions     StatKey = "addictions"
	StatSmarts         StatKey = "smarts"
	StatLooks          StatKey = "looks"
	StatHappiness      StatKey = "happiness"
	StatReputation     StatKey = "reputation"
	StatMoney          StatKey = "money"
)

// BoundedStats lists every stat kept in [0,100].
var BoundedStats = []StatKey{
	StatHealth,
	StatPhysicalHealth,
	StatMentalHealth,
	StatAddictions,
	StatSmarts,
	StatLooks,
	StatHappiness,
	StatReputation,
}

const (
	StatMin = 0
	StatMax = 100
)

type Stats struct {
	Health         int `json:"health"`
	PhysicalHealth int `json:"physicalHealth"`
	MentalHealth   int `json:"mentalHealth"`
	Addictions     int `json:"addictions"`
	Smarts         int `json:"smarts"`
	Looks          int `json:"looks"`
	Happiness      int `json:"happiness"`
	Reputation     int `json:"reputation"`
	Money          int `json:"money"`
}

// Delta is a partial stat change. Missing keys mean no change.
type Delta map[StatKey]int

func (d Delta) IsZero() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

// Merge returns a new delta holding the sum of d and other.
func (d Delta) Merge(other Delta) Delta {
	out := make(Delta, len(d)+len(other))
	for k, v := range d {
		out[k] += v
	}
	for k, v := range other {
		out[k] += v
	}
	return out
}

func (d Delta) Clone() Delta {
	if d == nil {
		return nil
	}
	out := make(Delta, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func (s Stats) Get(k StatKey) int {
	switch k {
	case StatHealth:
		return s.Health
	case StatPhysicalHealth:
		return s.PhysicalHealth
	case StatMentalHealth:
		return s.MentalHealth
	case StatAddictions:
		return s.Addictions
	case StatSmarts:
		return s.Smarts
	case StatLooks:
		return s.Looks
	case StatHappiness:
		return s.Happiness
	case StatReputation:
		return s.Reputation
	case StatMoney:
		return s.Money
	}
	return 0
}

func (s *Stats) set(k StatKey, v int) {
	switch k {
	case StatHealth:
		s.Health = v
	case StatPhysicalHealth:
		s.PhysicalHealth = v
	case StatMentalHealth:
		s.MentalHealth = v
	case StatAddictions:
		s.Addictions = v
	case StatSmarts:
		s.Smarts = v
	case StatLooks:
		s.Looks = v
	case StatHappiness:
		s.Happiness = v
	case StatReputation:
		s.Reputation = v
	case StatMoney:
		s.Money = v
	}
}

// Apply adds d to s. Bounded stats are clamped to [0,100]; money is not.
// Unknown keys are ignored.
func (s Stats) Apply(d Delta) Stats {
	for k, v := range d {
		if v == 0 {
			continue
		}
		if k == StatMoney {
			s.Money += v
			continue
		}
		s.set(k, Clamp(s.Get(k)+v))
	}
	return s
}

// ApplyFloored is Apply with money floored at 0 whenever d changes money.
func (s Stats) ApplyFloored(d Delta) Stats {
	s = s.Apply(d)
	if d[StatMoney] != 0 && s.Money < 0 {
		s.Money = 0
	}
	return s
}

// Clamp bounds v to [StatMin, StatMax].
func Clamp(v int) int {
	return ClampRange(v, StatMin, StatMax)
}

func ClampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
