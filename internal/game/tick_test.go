package game

import (
	"testing"

	"lifepath/internal/model"
	"lifepath/internal/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(evs []model.Event) []string {
	out := make([]string, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Title)
	}
	return out
}

func TestAdvance_ReleasesFromPrison(t *testing.T) {
	c := adult().Imprison(23)
	c.CriminalStatus.WantedLevel = 2
	c.PrisonRecord = []model.PrisonRecord{{ID: "p1", Crime: "Pickpocket", StartAge: 22, ReleaseAge: 23}}

	y := Advance(sim.Deterministic(sim.Constant(0.999)), model.DefaultSettings(), c, nil)
	require.False(t, y.Died)
	assert.Equal(t, 23, y.Character.Age)
	assert.False(t, y.Character.IsInPrison)
	assert.Nil(t, y.Character.PrisonReleaseAge)
	assert.Equal(t, 1, y.Character.CriminalStatus.WantedLevel)
	assert.True(t, y.Character.PrisonRecord[0].Released)
	assert.Contains(t, titles(y.Events), "Released from Prison")
}

func TestAdvance_WantedLevelFloorsAtZero(t *testing.T) {
	c := adult().Imprison(23)
	y := Advance(sim.Deterministic(sim.Constant(0.999)), model.DefaultSettings(), c, nil)
	assert.False(t, y.Character.IsInPrison)
	assert.Equal(t, 0, y.Character.CriminalStatus.WantedLevel)
}

func TestAdvance_StillServing(t *testing.T) {
	c := adult().Imprison(30)
	y := Advance(sim.Deterministic(sim.Constant(0.999)), model.DefaultSettings(), c, nil)
	assert.True(t, y.Character.IsInPrison)
	assert.NotContains(t, titles(y.Events), "Released from Prison")
}

func TestAdvance_Death(t *testing.T) {
	c := adult()
	y := Advance(sim.Deterministic(sim.Constant(0)), model.DefaultSettings(), c, nil)
	require.True(t, y.Died)
	assert.False(t, y.Character.IsAlive)
	assert.Equal(t, 23, y.Character.DeathAge)
	assert.NotEmpty(t, y.Character.DeathCause)
	assert.Contains(t, titles(y.Events), "Died")
	require.NotNil(t, y.Character.LifeSummary)
}

func TestAdvance_DoesNotTouchInput(t *testing.T) {
	c := adult()
	history := []model.Event{{ID: "e1", Title: "Born!"}}
	Advance(sim.Deterministic(sim.NewSource(5)), model.DefaultSettings(), c, history)
	assert.Equal(t, 22, c.Age)
	assert.Len(t, history, 1)
}

func TestAdvance_DeliversDueBaby(t *testing.T) {
	c := adult()
	c.Gender = model.Female
	c.IsPregnant = true
	c.PregnancyDueAge = 23

	y := Advance(sim.Deterministic(sim.Constant(0.999)), model.DefaultSettings(), c, nil)
	assert.False(t, y.Character.IsPregnant)
	assert.Zero(t, y.Character.PregnancyDueAge)
	assert.Len(t, y.Character.Children, 1)
}

func TestAdvance_PregnancyNeedsSetting(t *testing.T) {
	c := adult()
	c.Gender = model.Female
	var err error
	c, err = c.AddRelationship(model.Relationship{ID: "r1", Name: "Sam", IsActive: true})
	require.NoError(t, err)

	env := sim.Deterministic(sim.Constant(0.999))
	env.Policy.PregnancyChance = 1

	off := Advance(env, model.Settings{}, c, nil)
	assert.False(t, off.Character.IsPregnant)

	on := Advance(env, model.Settings{PregnancyEnabled: true}, c, nil)
	assert.True(t, on.Character.IsPregnant)
	assert.Equal(t, 24, on.Character.PregnancyDueAge)
	assert.Contains(t, titles(on.Events), "Pregnant")
}
