package crime

import (
	"math"
	"testing"

	"lifepath/internal/model"
	"lifepath/internal/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adult() model.Character {
	return model.Character{
		Age:            22,
		IsAlive:        true,
		Stats:          model.Stats{Health: 70, Smarts: 60, Happiness: 50, Reputation: 50, Money: 1000},
		CriminalStatus: model.DefaultCriminalStatus(),
	}
}

func inmate(release float64) model.Character {
	c := adult().Imprison(release)
	c.PrisonRecord = []model.PrisonRecord{{ID: "p1", Crime: "Steal Car", StartAge: 22, ReleaseAge: release}}
	return c
}

func TestSuccessRate(t *testing.T) {
	p := sim.DefaultPolicy()
	car, _ := Find("steal_car")
	c := adult()
	assert.InDelta(t, 0.6, SuccessRate(p, c, car), 1e-9)

	c.Stats.Smarts = 35
	assert.InDelta(t, 0.5, SuccessRate(p, c, car), 1e-9)

	c.Stats.Smarts = 10
	c.CriminalStatus.WantedLevel = 5
	assert.InDelta(t, p.CrimeSuccessFloor, SuccessRate(p, c, car), 1e-9)
}

func TestCommit_Caught(t *testing.T) {
	// failed attempt, then the jail draw lands mid-range
	env := sim.Deterministic(sim.NewScripted(0.99, 0.5))
	c, ev, err := Commit(env, adult(), "steal_car")
	require.NoError(t, err)

	assert.Equal(t, "Caught: Steal Car", ev.Title)
	assert.Equal(t, model.CategoryCriminal, ev.Category)
	require.Len(t, c.CriminalRecord, 1)
	assert.Equal(t, "2 years in prison", c.CriminalRecord[0].Punishment)
	require.Len(t, c.PrisonRecord, 1)
	assert.InDelta(t, 2.0, c.PrisonRecord[0].SentenceYears, 1e-9)
	assert.True(t, c.IsInPrison)
	require.NotNil(t, c.PrisonReleaseAge)
	assert.Equal(t, 24.0, *c.PrisonReleaseAge)
	assert.Equal(t, 2, c.CriminalStatus.WantedLevel)
	assert.Equal(t, 1, c.CriminalStatus.TimesSentenced)
	assert.Equal(t, 1, c.CriminalStatus.TotalCrimesCommitted)
}

func TestCommit_ReleaseAgeIsCeilOfJailTime(t *testing.T) {
	for i := 0; i < 50; i++ {
		env := sim.Deterministic(sim.NewSource(int64(i)))
		base := adult()
		base.Stats.Smarts = 0
		base.Stats.Health = 0
		c, _, err := Commit(env, base, "rob_bank")
		require.NoError(t, err)
		if !c.IsInPrison {
			continue
		}
		jail := c.PrisonRecord[0].SentenceYears
		assert.GreaterOrEqual(t, jail, 10.0)
		assert.LessOrEqual(t, jail, 25.0)
		assert.Equal(t, float64(base.Age)+math.Ceil(jail), *c.PrisonReleaseAge)
	}
}

func TestCommit_GotAway(t *testing.T) {
	env := sim.Deterministic(sim.NewScripted(0.1, 0.9, 0.5))
	c, ev, err := Commit(env, adult(), "steal_car")
	require.NoError(t, err)
	assert.Equal(t, "Successful Steal Car", ev.Title)
	assert.Equal(t, 9500, c.Stats.Money)
	assert.False(t, c.IsInPrison)
	assert.Empty(t, c.CriminalRecord)
	assert.Equal(t, []string{"Steal Car"}, c.CriminalStatus.ActiveWarrants)
}

func TestCommit_CapturedDespiteSuccess(t *testing.T) {
	env := sim.Deterministic(sim.NewScripted(0.1, 0.1, 0))
	c, ev, err := Commit(env, adult(), "pickpocket")
	require.NoError(t, err)
	assert.Equal(t, "Caught: Pickpocket", ev.Title)
	assert.Equal(t, 23.0, *c.PrisonReleaseAge)
}

func TestCommit_WantedCapped(t *testing.T) {
	c := adult()
	c.CriminalStatus.WantedLevel = 4
	c, _, err := Commit(sim.Deterministic(sim.NewScripted(0.1, 0.9)), c, "rob_bank")
	require.NoError(t, err)
	assert.Equal(t, model.MaxWantedLevel, c.CriminalStatus.WantedLevel)
}

func TestCommit_Preconditions(t *testing.T) {
	_, _, err := Commit(sim.Deterministic(sim.Constant(0)), inmate(30), "pickpocket")
	assert.ErrorIs(t, err, model.ErrInPrison)
	_, _, err = Commit(sim.Deterministic(sim.Constant(0)), adult(), "jaywalking")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestEscape(t *testing.T) {
	_, _, err := Escape(sim.Deterministic(sim.Constant(0)), adult())
	assert.ErrorIs(t, err, model.ErrNotInPrison)

	c, ev, err := Escape(sim.Deterministic(sim.Constant(0.1)), inmate(24))
	require.NoError(t, err)
	assert.Equal(t, "Prison Escape Successful", ev.Title)
	assert.False(t, c.IsInPrison)
	assert.Nil(t, c.PrisonReleaseAge)
	assert.Equal(t, model.MaxWantedLevel, c.CriminalStatus.WantedLevel)
	assert.True(t, c.PrisonRecord[0].Escaped)

	c, ev, err = Escape(sim.Deterministic(sim.NewScripted(0.9, 0.5)), inmate(24))
	require.NoError(t, err)
	assert.Equal(t, "Prison Escape Failed", ev.Title)
	assert.Equal(t, 26.0, *c.PrisonReleaseAge)
	assert.Equal(t, 26.0, c.PrisonRecord[0].ReleaseAge)
	assert.Contains(t, ev.Description, "2 years")
}

func TestBribe_CannotAfford(t *testing.T) {
	c := inmate(24)
	got, ev, err := Bribe(sim.Deterministic(sim.Constant(0)), c)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.Equal(t, "Bribery Failed", ev.Title)
	assert.Equal(t, model.EventNegative, ev.Type)
	assert.Equal(t, c.Stats, got.Stats)
	assert.Equal(t, 24.0, *got.PrisonReleaseAge)
}

func TestBribe(t *testing.T) {
	c := inmate(24)
	c.Stats.Money = 50000
	got, ev, err := Bribe(sim.Deterministic(sim.Constant(0)), c)
	require.NoError(t, err)
	assert.Equal(t, "Successful Bribery", ev.Title)
	assert.Equal(t, 40000, got.Stats.Money)
	assert.Equal(t, 23.0, *got.PrisonReleaseAge)

	got, ev, err = Bribe(sim.Deterministic(sim.NewScripted(0, 0.9, 0.5)), c)
	require.NoError(t, err)
	assert.Equal(t, "Bribery Backfired", ev.Title)
	assert.Equal(t, 25.0, *got.PrisonReleaseAge)
	assert.Contains(t, ev.Description, "12 months")
}

func TestBribe_NeverBeforeHalfYear(t *testing.T) {
	c := inmate(22.6)
	c.Stats.Money = 50000
	got, _, err := Bribe(sim.Deterministic(sim.Constant(0)), c)
	require.NoError(t, err)
	assert.Equal(t, 22.5, *got.PrisonReleaseAge)
}

func TestCheckRelease(t *testing.T) {
	c := inmate(24)
	c.CriminalStatus.WantedLevel = 2
	_, ev := CheckRelease(sim.Deterministic(sim.Constant(0)), c)
	assert.Nil(t, ev)

	c.Age = 24
	got, ev := CheckRelease(sim.Deterministic(sim.Constant(0)), c)
	require.NotNil(t, ev)
	assert.Equal(t, "Released from Prison", ev.Title)
	assert.False(t, got.IsInPrison)
	assert.Equal(t, 1, got.CriminalStatus.WantedLevel)
	assert.True(t, got.PrisonRecord[0].Released)

	c.CriminalStatus.WantedLevel = 0
	got, _ = CheckRelease(sim.Deterministic(sim.Constant(0)), c)
	assert.Zero(t, got.CriminalStatus.WantedLevel)
}

func TestCheckRelease_MissingReleaseAge(t *testing.T) {
	c := adult()
	c.IsInPrison = true
	got, ev := CheckRelease(sim.Deterministic(sim.Constant(0)), c)
	require.NotNil(t, ev)
	assert.False(t, got.IsInPrison)
}

func TestGenerate(t *testing.T) {
	_, ev := Generate(sim.Deterministic(sim.Constant(0)), adult())
	assert.Nil(t, ev)

	_, ev = Generate(sim.Deterministic(sim.Constant(0)), inmate(30))
	require.NotNil(t, ev)
	assert.Equal(t, "Prison Fight", ev.Title)
	assert.Equal(t, model.CategoryPrison, ev.Category)

	// Contraband is the only hit
	c, ev := Generate(sim.Deterministic(sim.NewScripted(0.9, 0.9, 0.01, 0.9)), inmate(30))
	require.NotNil(t, ev)
	assert.Equal(t, "Contraband Found", ev.Title)
	assert.Equal(t, 30.5, *c.PrisonReleaseAge)
}
