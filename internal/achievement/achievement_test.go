package achievement

import (
	"testing"

	"lifepath/internal/model"
	"lifepath/internal/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titled(title string, n int, typ model.EventType) []model.Event {
	out := make([]model.Event, n)
	for i := range out {
		out[i] = model.Event{Title: title, Type: typ}
	}
	return out
}

func person() model.Character {
	return model.Character{
		Age:     30,
		IsAlive: true,
		Stats:   model.Stats{Smarts: 50},
		Family: model.Family{
			Mother: model.FamilyMember{Name: "Ann", Closeness: 95, IsAlive: true},
			Father: model.FamilyMember{Name: "Bob", Closeness: 50, IsAlive: true},
		},
	}
}

func ids(c model.Character) []string {
	var out []string
	for _, a := range c.Achievements {
		out = append(out, a.ID)
	}
	return out
}

func TestEvaluate_Nothing(t *testing.T) {
	c, evs := Evaluate(sim.Deterministic(sim.Constant(0)), person(), nil)
	assert.Empty(t, evs)
	assert.Empty(t, c.Achievements)
}

func TestEvaluate_EventCounts(t *testing.T) {
	var log []model.Event
	log = append(log, titled("Got Grounded", 3, model.EventNegative)...)
	log = append(log, titled("Made Honor Roll", 5, model.EventPositive)...)
	log = append(log, titled("Skipped Class", 9, model.EventNegative)...)
	log = append(log, titled("Asked Ann for Money", 20, model.EventPositive)...)

	c, evs := Evaluate(sim.Deterministic(sim.Constant(0)), person(), log)
	assert.Equal(t, []string{"troublemaker", "honor_student", "money_bags"}, ids(c))
	require.Len(t, evs, 3)
	assert.Equal(t, "Achievement Unlocked: Troublemaker", evs[0].Title)
	assert.Equal(t, model.CategoryAchievement, evs[0].Category)
	assert.Equal(t, model.EventPositive, evs[0].Type)
}

func TestEvaluate_RefusedMoneyDoesNotCount(t *testing.T) {
	log := titled("Asked Ann for Money", 30, model.EventNegative)
	c, _ := Evaluate(sim.Deterministic(sim.Constant(0)), person(), log)
	assert.NotContains(t, ids(c), "money_bags")
}

func TestEvaluate_CharacterPredicates(t *testing.T) {
	c := person()
	c.Family.Father.Closeness = 90
	c.Stats.Smarts = 96
	c.Age = 80
	c, _ = Evaluate(sim.Deterministic(sim.Constant(0)), c, nil)
	assert.Equal(t, []string{"family_favorite", "survivor", "genius"}, ids(c))
}

func TestEvaluate_Idempotent(t *testing.T) {
	c := person()
	c.Age = 85
	c, first := Evaluate(sim.Deterministic(sim.Constant(0)), c, nil)
	require.Len(t, first, 1)
	c, second := Evaluate(sim.Deterministic(sim.Constant(0)), c, nil)
	assert.Empty(t, second)
	assert.Len(t, c.Achievements, 1)
}
