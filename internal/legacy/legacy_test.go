package legacy

import (
	"testing"

	"lifepath/internal/model"
	"lifepath/internal/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parents(mother, father bool) model.Family {
	return model.Family{
		Mother: model.FamilyMember{ID: "m", Name: "Ann", Relation: model.RelationMother, Closeness: 60, IsAlive: mother},
		Father: model.FamilyMember{ID: "f", Name: "Bob", Relation: model.RelationFather, Closeness: 80, IsAlive: father},
	}
}

func TestScore_Weights(t *testing.T) {
	c := model.Character{
		Age:            50,
		Stats:          model.Stats{Money: 30000},
		Finances:       model.Finances{Savings: 25000, Debt: 5000},
		Family:         parents(true, true),
		Children:       []model.Child{{Relationship: 90}, {Relationship: 70}},
		Career:         model.Career{WorkExperience: 10, JobLevel: 3},
		Education:      model.Education{CurrentLevel: model.LevelGraduated, GPA: 3.6},
		Achievements:   []model.Achievement{{ID: "a"}},
		Relationships:  []model.Relationship{{ID: "r"}},
		CriminalRecord: []model.CriminalRecord{{ID: "x"}},
		CriminalStatus: model.CriminalStatus{TotalJailTime: 2},
		Will:           model.Will{CharityDonations: []model.CharityDonation{{Amount: 3500}}},
	}
	events := []model.Event{
		{Type: model.EventPositive},
		{Type: model.EventPositive},
		{Type: model.EventNegative},
		{Type: model.EventNeutral},
	}
	want := 100 + // age
		5 + // net worth
		7 + // family closeness
		30 + 16 + // children
		30 + 10 + // career
		20 + 15 + // education
		10 + 5 + // achievements, relationships
		-10 - 10 + // crime
		10 + // sober
		4 - 1 + // events
		3 // charity
	assert.Equal(t, want, Score(c, events))
}

func TestScore_Addictions(t *testing.T) {
	c := model.Character{Stats: model.Stats{Addictions: 50}}
	assert.Equal(t, 0, Score(c, nil), "floored at zero")
	c.Age = 20
	assert.Equal(t, 40-10, Score(c, nil))
}

func TestDescribe_Tiers(t *testing.T) {
	assert.Contains(t, Describe(500), "legendary")
	assert.Contains(t, Describe(300), "remarkable")
	assert.Contains(t, Describe(200), "good person")
	assert.Contains(t, Describe(100), "ordinary")
	assert.Contains(t, Describe(50), "persevered")
	assert.Contains(t, Describe(49), "troubled soul")
}

func TestCreateWill_ChildrenAndPartner(t *testing.T) {
	c := model.Character{
		Age:    60,
		Family: parents(true, true),
		Children: []model.Child{
			{Name: "Kid A", IsAlive: true},
			{Name: "Kid B", IsAlive: true},
			{Name: "Gone", IsAlive: false},
		},
		Relationships: []model.Relationship{{ID: "p", Name: "Sam", IsActive: true}},
	}
	got := CreateWill(c)
	require.Len(t, got.Will.Beneficiaries, 3)
	assert.Equal(t, model.Beneficiary{Name: "Kid A", Relation: "Child", Percentage: 40}, got.Will.Beneficiaries[0])
	assert.Equal(t, model.Beneficiary{Name: "Sam", Relation: "Spouse/Partner", Percentage: 20}, got.Will.Beneficiaries[2])
	assert.Equal(t, 60, got.Will.LastUpdated)
	assert.Empty(t, c.Will.Beneficiaries)
}

func TestCreateWill_PartnerOnly(t *testing.T) {
	c := model.Character{Relationships: []model.Relationship{{Name: "Sam", IsActive: true}}}
	got := CreateWill(c)
	require.Len(t, got.Will.Beneficiaries, 1)
	assert.Equal(t, 50.0, got.Will.Beneficiaries[0].Percentage)
}

func TestCreateWill_FallsBackToParents(t *testing.T) {
	got := CreateWill(model.Character{Family: parents(true, true)})
	require.Len(t, got.Will.Beneficiaries, 2)
	assert.Equal(t, 50.0, got.Will.Beneficiaries[0].Percentage)

	got = CreateWill(model.Character{Family: parents(false, true)})
	require.Len(t, got.Will.Beneficiaries, 1)
	assert.Equal(t, model.Beneficiary{Name: "Bob", Relation: "Father", Percentage: 100}, got.Will.Beneficiaries[0])
}

func TestCreateWill_KeepsExisting(t *testing.T) {
	c := model.Character{Will: model.Will{Beneficiaries: []model.Beneficiary{{Name: "Cat", Percentage: 100}}}}
	assert.Equal(t, c, CreateWill(c))
}

func TestTimeline(t *testing.T) {
	events := []model.Event{
		{Age: 30, Title: "Got Hired", Type: model.EventPositive},
		{Age: 0, Title: "Born!", Type: model.EventPositive},
		{Age: 12, Title: "Another Year Older", Type: model.EventNeutral},
		{Age: 20, Title: "Lottery", Type: model.EventPositive, StatChanges: model.Delta{model.StatMoney: 5000}},
		{Age: 21, Title: "Small Win", Type: model.EventPositive, StatChanges: model.Delta{model.StatHappiness: 3}},
		{Age: 25, Title: "Car Crash", Type: model.EventNegative, StatChanges: model.Delta{model.StatHealth: -30}},
	}
	var got []string
	for _, e := range Timeline(events) {
		got = append(got, e.Title)
	}
	assert.Equal(t, []string{"Born!", "Lottery", "Got Hired"}, got)
}

func TestTimeline_Capped(t *testing.T) {
	var events []model.Event
	for i := range 30 {
		events = append(events, model.Event{Age: i, Title: "Promoted", Type: model.EventPositive})
	}
	assert.Len(t, Timeline(events), TimelineLimit)
	assert.Len(t, KeyEvents(events), KeyEventLimit)
}

func TestFinalize(t *testing.T) {
	env := sim.Deterministic(sim.Constant(0))
	c := model.Character{
		Name:          "Max",
		Age:           72,
		IsAlive:       true,
		Family:        parents(true, false),
		Relationships: []model.Relationship{{Name: "Sam", IsActive: true}, {Name: "Old Flame"}},
		Career:        model.Career{JobsHeld: []string{"Cashier", "Cashier", "Engineer"}},
		Stats:         model.Stats{Money: 1000},
	}
	events := []model.Event{{Age: 0, Title: "Born!", Type: model.EventPositive}}

	got, out := Finalize(env, c, "Natural causes", events)
	assert.False(t, got.IsAlive)
	assert.Equal(t, "Natural causes", got.DeathCause)
	assert.Equal(t, 72, got.DeathAge)

	var titles []string
	for _, e := range out {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"Died", "Ann's Grief", "Sam's Farewell"}, titles)
	assert.Equal(t, model.CategoryHealth, out[0].Category)
	assert.Contains(t, out[0].Description, "Natural causes")

	require.NotNil(t, got.LifeSummary)
	s := got.LifeSummary
	assert.Equal(t, 72, s.TotalYearsLived)
	assert.Equal(t, []string{"Cashier", "Engineer"}, s.JobsHeld)
	assert.Equal(t, 1000, s.TotalWealth)
	assert.Equal(t, 2, s.RelationshipsCount)
	assert.Equal(t, got.LegacyScore, s.LegacyScore)
	require.Len(t, s.KeyEvents, 1)
	assert.Equal(t, "Born!", s.KeyEvents[0].Title)
	assert.Len(t, got.Will.Beneficiaries, 1)

	again, more := Finalize(env, got, "Other", events)
	assert.Nil(t, more)
	assert.Equal(t, "Natural causes", again.DeathCause)
}
