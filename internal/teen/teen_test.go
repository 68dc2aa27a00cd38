package teen

import (
	"testing"

	"lifepath/internal/model"
	"lifepath/internal/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teenager(age int) model.Character {
	return model.Character{
		Name:    "Sam Lee",
		Gender:  model.Female,
		Age:     age,
		Stats:   model.Stats{Health: 80, Happiness: 50, Reputation: 50, Smarts: 50, Looks: 50, Money: 100},
		IsAlive: true,
	}
}

func dating(t *testing.T, c model.Character) (model.Character, string) {
	t.Helper()
	c, _, err := StartDating(sim.Deterministic(sim.Constant(0)), c)
	require.NoError(t, err)
	r, ok := c.ActiveRelationship()
	require.True(t, ok)
	return c, r.ID
}

func TestStartDating(t *testing.T) {
	c, ev, err := StartDating(sim.Deterministic(sim.Constant(0)), teenager(16))
	require.NoError(t, err)

	r, ok := c.ActiveRelationship()
	require.True(t, ok)
	assert.Equal(t, "Alex Johnson", r.Name)
	assert.Equal(t, 14, r.Age)
	assert.Equal(t, model.RelationshipStats{Trust: 60, Attraction: 60, Loyalty: 60}, r.Stats)
	assert.Equal(t, 16, r.StartedAt)

	assert.Equal(t, "Started Dating", ev.Title)
	assert.Equal(t, model.CategoryRelationship, ev.Category)
	assert.Equal(t, 58, c.Stats.Happiness)
	assert.Equal(t, 52, c.Stats.Reputation)
}

func TestStartDating_PartnerAgeFloor(t *testing.T) {
	c, _, err := StartDating(sim.Deterministic(sim.Constant(0)), teenager(13))
	require.NoError(t, err)
	r, _ := c.ActiveRelationship()
	assert.Equal(t, 13, r.Age)
}

func TestStartDating_Preconditions(t *testing.T) {
	_, _, err := StartDating(sim.Deterministic(sim.Constant(0)), teenager(12))
	assert.ErrorIs(t, err, model.ErrTooYoung)
	assert.ErrorIs(t, err, model.ErrPrecondition)

	c, _ := dating(t, teenager(16))
	before := len(c.Relationships)
	c, _, err = StartDating(sim.Deterministic(sim.Constant(0)), c)
	assert.ErrorIs(t, err, model.ErrAlreadyDating)
	assert.Len(t, c.Relationships, before)
}

func TestBreakUp(t *testing.T) {
	c, id := dating(t, teenager(17))
	c, ev, err := BreakUp(sim.Deterministic(sim.Constant(0)), c, id)
	require.NoError(t, err)
	assert.Equal(t, "Broke Up", ev.Title)

	r, _ := c.FindRelationship(id)
	assert.False(t, r.IsActive)
	assert.Equal(t, model.RelationshipEx, r.Kind)
	require.NotNil(t, r.EndedAt)
	assert.Equal(t, 17, *r.EndedAt)

	_, _, err = BreakUp(sim.Deterministic(sim.Constant(0)), c, id)
	assert.ErrorIs(t, err, model.ErrRelationshipEnded)
	_, _, err = BreakUp(sim.Deterministic(sim.Constant(0)), c, "nope")
	assert.ErrorIs(t, err, model.ErrRelationshipNotFound)
}

func TestCheat_Caught(t *testing.T) {
	c, id := dating(t, teenager(16))
	c, ev, err := Cheat(sim.Deterministic(sim.Constant(0.1)), c, id)
	require.NoError(t, err)
	assert.Equal(t, "Caught Cheating", ev.Title)
	_, active := c.ActiveRelationship()
	assert.False(t, active)
	assert.Equal(t, 15, c.RiskMeter)
	assert.Equal(t, -10, ev.StatChanges[model.StatReputation])
}

func TestCheat_Undetected(t *testing.T) {
	c, id := dating(t, teenager(16))
	c, ev, err := Cheat(sim.Deterministic(sim.Constant(0.9)), c, id)
	require.NoError(t, err)
	assert.Equal(t, "Cheated", ev.Title)
	r, active := c.ActiveRelationship()
	require.True(t, active)
	assert.Equal(t, 40, r.Stats.Trust)
	assert.Equal(t, 45, r.Stats.Loyalty)
}

func TestCheat_RiskCapped(t *testing.T) {
	c, id := dating(t, teenager(16))
	c.RiskMeter = 95
	c, _, err := Cheat(sim.Deterministic(sim.Constant(0.9)), c, id)
	require.NoError(t, err)
	assert.Equal(t, 100, c.RiskMeter)
}

func TestGiveGift(t *testing.T) {
	c, id := dating(t, teenager(16))
	c, ev, err := GiveGift(sim.Deterministic(sim.Constant(0)), c, id)
	require.NoError(t, err)
	assert.Equal(t, "Gave Gift", ev.Title)
	assert.Equal(t, 90, c.Stats.Money)
	r, _ := c.FindRelationship(id)
	assert.Equal(t, model.RelationshipStats{Trust: 65, Attraction: 63, Loyalty: 64}, r.Stats)
}

func TestGiveGift_CannotAfford(t *testing.T) {
	c, id := dating(t, teenager(16))
	c.Stats.Money = 5
	got, ev, err := GiveGift(sim.Deterministic(sim.Constant(0)), c, id)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.Empty(t, ev.ID)
	assert.Equal(t, 5, got.Stats.Money)
}

func TestFlirt(t *testing.T) {
	c, id := dating(t, teenager(16))
	c, ev, err := Flirt(sim.Deterministic(sim.Constant(0)), c, id, "Nice shoes", false,
		model.RelationshipStats{Trust: -70, Attraction: 50})
	require.NoError(t, err)
	assert.Equal(t, "Awkward Flirt", ev.Title)
	assert.Contains(t, ev.Description, `"Nice shoes"`)
	r, _ := c.FindRelationship(id)
	assert.Equal(t, 0, r.Stats.Trust)
	assert.Equal(t, 100, r.Stats.Attraction)
}

func TestGetFirstJob(t *testing.T) {
	c, ev, err := GetFirstJob(sim.Deterministic(sim.Constant(0)), teenager(15))
	require.NoError(t, err)
	assert.True(t, c.Career.HasJob)
	assert.Equal(t, "Cashier at Local Store", c.Career.JobTitle)
	assert.Equal(t, 150, c.Stats.Money)
	assert.Equal(t, model.CategoryCareer, ev.Category)

	_, _, err = GetFirstJob(sim.Deterministic(sim.Constant(0)), c)
	assert.ErrorIs(t, err, model.ErrAlreadyEmployed)
}

func TestCommitCrime_CaughtGrounded(t *testing.T) {
	// second crime in the table, then caught
	env := sim.Deterministic(sim.NewScripted(0.2, 0.1))
	c, ev := CommitCrime(env, teenager(15))
	assert.Equal(t, "Caught: Vandalism", ev.Title)
	assert.Equal(t, model.CategoryTeen, ev.Category)
	require.Len(t, c.CriminalRecord, 1)
	assert.Equal(t, "Grounded for 2 years", c.CriminalRecord[0].Punishment)
	assert.True(t, c.IsGrounded)
	assert.Equal(t, 17, c.GroundedUntilAge)
	assert.Equal(t, 20, c.RiskMeter)
}

func TestCommitCrime_GotAway(t *testing.T) {
	env := sim.Deterministic(sim.NewScripted(0, 0.9))
	c, ev := CommitCrime(env, teenager(15))
	assert.Equal(t, "Shoplifting", ev.Title)
	assert.Empty(t, c.CriminalRecord)
	assert.False(t, c.IsGrounded)
	assert.Equal(t, 10, c.RiskMeter)
}

func TestTryDrugs(t *testing.T) {
	cases := []struct {
		name    string
		draws   []float64
		title   string
		records int
	}{
		{"caught wins over reaction", []float64{0.1, 0.1}, "Caught Using Drugs", 1},
		{"bad reaction", []float64{0.5, 0.1}, "Bad Drug Experience", 0},
		{"fine", []float64{0.5, 0.5}, "Tried Drugs", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := sim.NewScripted(tc.draws...)
			c, ev := TryDrugs(sim.Deterministic(src), teenager(15))
			assert.Equal(t, tc.title, ev.Title)
			assert.Len(t, c.CriminalRecord, tc.records)
			assert.Equal(t, 25, c.RiskMeter)
			assert.Equal(t, 2, src.Consumed())
		})
	}
}

func TestSneakOut(t *testing.T) {
	c, ev := SneakOut(sim.Deterministic(sim.Constant(0.1)), teenager(14))
	assert.Equal(t, "Caught Sneaking Out", ev.Title)
	assert.True(t, c.IsGrounded)
	assert.Equal(t, 15, c.GroundedUntilAge)

	c, ev = SneakOut(sim.Deterministic(sim.Constant(0.9)), teenager(14))
	assert.Equal(t, "Snuck Out", ev.Title)
	assert.Equal(t, model.EventPositive, ev.Type)
	assert.False(t, c.IsGrounded)
}

func TestCheckPregnancy(t *testing.T) {
	c, _ := dating(t, teenager(17))

	got, ev := CheckPregnancy(sim.Deterministic(sim.Constant(0)), c)
	require.NotNil(t, ev)
	assert.True(t, got.IsPregnant)
	assert.Equal(t, 18, got.PregnancyDueAge)

	src := sim.NewScripted()
	male := c
	male.Gender = model.Male
	_, ev = CheckPregnancy(sim.Deterministic(src), male)
	assert.Nil(t, ev)
	assert.Zero(t, src.Consumed())

	_, ev = CheckPregnancy(sim.Deterministic(sim.Constant(0)), got)
	assert.Nil(t, ev, "already pregnant")
}

func TestUpdateGrounded(t *testing.T) {
	c := teenager(15)
	c.IsGrounded = true
	c.GroundedUntilAge = 16
	assert.True(t, UpdateGrounded(c).IsGrounded)
	c.Age = 16
	got := UpdateGrounded(c)
	assert.False(t, got.IsGrounded)
	assert.Zero(t, got.GroundedUntilAge)
}

func TestGenerate(t *testing.T) {
	assert.Nil(t, Generate(sim.Deterministic(sim.Constant(0)), teenager(12)))

	ev := Generate(sim.Deterministic(sim.Constant(0.99)), teenager(15))
	assert.Nil(t, ev)

	ev = Generate(sim.Deterministic(sim.Constant(0)), teenager(15))
	require.NotNil(t, ev)
	assert.Equal(t, model.CategoryTeen, ev.Category)
}
