package game

import (
	"context"
	"testing"
	"time"

	"lifepath/internal/family"
	"lifepath/internal/model"
	"lifepath/internal/save"
	"lifepath/internal/sim"
	"lifepath/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adult() model.Character {
	return model.Character{
		ID:             "c1",
		Name:           "Ada Lane",
		Age:            22,
		IsAlive:        true,
		Stats:          model.Stats{Health: 70, PhysicalHealth: 70, MentalHealth: 70, Smarts: 60, Happiness: 50, Reputation: 50, Money: 1000},
		CriminalStatus: model.DefaultCriminalStatus(),
		Finances:       model.Finances{MonthlyExpenses: model.DefaultMonthlyExpenses},
	}
}

func newEngine(t *testing.T, src sim.Source) (*Engine, *save.MemoryRepo) {
	t.Helper()
	repo := save.NewMemoryRepo(nil)
	e := New(Options{Env: sim.Deterministic(src), Repo: repo})
	return e, repo
}

// loaded returns an engine playing c, restored from a save.
func loaded(t *testing.T, src sim.Source, c model.Character) (*Engine, *save.MemoryRepo) {
	t.Helper()
	e, repo := newEngine(t, src)
	s := model.NewGameState()
	s.Character = &c
	s.IsPlaying = c.IsAlive
	require.NoError(t, repo.Save(context.Background(), "default", s))
	require.NoError(t, e.Load(context.Background()))
	return e, repo
}

func TestLoad_NothingSaved(t *testing.T) {
	e, _ := newEngine(t, sim.Constant(0.5))
	require.NoError(t, e.Load(context.Background()))
	assert.Equal(t, model.PhaseNotStarted, e.State().Phase())
}

func TestStart_Birth(t *testing.T) {
	ctx := context.Background()
	events := telemetry.NewMemoryRepository()
	repo := save.NewMemoryRepo(nil)
	e := New(Options{Env: sim.Deterministic(sim.NewSource(7)), Repo: repo, Events: events})

	s, err := e.Start(ctx)
	require.NoError(t, err)
	require.NotNil(t, s.Character)
	assert.Equal(t, 0, s.Character.Age)
	assert.True(t, s.Character.IsAlive)
	assert.True(t, s.IsPlaying)
	require.Len(t, s.Events, 1)
	assert.Equal(t, "Born!", s.Events[0].Title)
	assert.Equal(t, model.CategoryGeneral, s.Events[0].Category)

	saved, ok, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s.Character.ID, saved.Character.ID)

	recorded, err := events.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, telemetry.EventLifeStarted, recorded[0].Type)
}

func TestAgeUp_NoLife(t *testing.T) {
	e, _ := newEngine(t, sim.Constant(0.5))
	_, err := e.AgeUp(context.Background())
	assert.ErrorIs(t, err, model.ErrNoCharacter)
	assert.ErrorIs(t, err, model.ErrPrecondition)
}

func TestAgeUp_AppendsYear(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t, sim.NewSource(3))
	_, err := e.Start(ctx)
	require.NoError(t, err)

	y, err := e.AgeUp(ctx)
	require.NoError(t, err)
	s := e.State()
	assert.Equal(t, 1, s.Character.Age)
	assert.Equal(t, y.Character.Age, s.Character.Age)
	assert.Len(t, s.Events, 1+len(y.Events))
}

func TestAgeUp_DeathIsTerminal(t *testing.T) {
	ctx := context.Background()
	dead := adult()
	dead.IsAlive = false
	dead.DeathAge = 22
	dead.DeathCause = "Natural Causes"
	e, _ := loaded(t, sim.Constant(0), dead)
	before := e.State()

	_, err := e.AgeUp(ctx)
	assert.ErrorIs(t, err, model.ErrDeceased)
	_, err = e.StartDating(ctx)
	assert.ErrorIs(t, err, model.ErrDeceased)
	assert.Equal(t, before, e.State())
}

func TestAgeYears(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t, sim.NewSource(11))
	_, err := e.Start(ctx)
	require.NoError(t, err)

	_, err = e.AgeYears(ctx, 0)
	assert.ErrorIs(t, err, model.ErrPrecondition)
	_, err = e.AgeYears(ctx, MaxYearsPerCall+1)
	assert.ErrorIs(t, err, model.ErrPrecondition)

	years, err := e.AgeYears(ctx, 3)
	require.NoError(t, err)
	require.Len(t, years, 3)
	assert.Equal(t, 3, e.State().Character.Age)
}

func TestAgeYears_StopsAtDeath(t *testing.T) {
	ctx := context.Background()
	e, _ := loaded(t, sim.Constant(0), adult())

	years, err := e.AgeYears(ctx, 5)
	require.NoError(t, err)
	require.Len(t, years, 1)
	assert.True(t, years[0].Died)
	s := e.State()
	assert.False(t, s.IsPlaying)
	assert.Equal(t, model.PhaseDeceased, s.Phase())
}

func TestReset_KeepsSettings(t *testing.T) {
	ctx := context.Background()
	e, repo := newEngine(t, sim.NewSource(1))
	_, err := e.UpdateSettings(ctx, model.Settings{DarkMode: true, PregnancyEnabled: true})
	require.NoError(t, err)
	_, err = e.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, e.Reset(ctx))
	s := e.State()
	assert.Nil(t, s.Character)
	assert.True(t, s.Settings.DarkMode)
	assert.True(t, s.Settings.PregnancyEnabled)

	saved, ok, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, saved.Character)
}

func TestSettingsSurviveWithoutAutosave(t *testing.T) {
	ctx := context.Background()
	e, repo := newEngine(t, sim.NewSource(1))
	_, err := e.UpdateSettings(ctx, model.Settings{})
	require.NoError(t, err)
	_, err = e.Start(ctx)
	require.NoError(t, err)

	saved, ok, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, saved.Character)

	require.NoError(t, e.Save(ctx))
	saved, _, err = repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.NotNil(t, saved.Character)
}

func TestSetTab(t *testing.T) {
	ctx := context.Background()
	e, _ := newEngine(t, sim.Constant(0.5))
	require.NoError(t, e.SetTab(ctx, model.TabFamily))
	assert.Equal(t, model.TabFamily, e.State().CurrentTab)

	err := e.SetTab(ctx, model.Tab("casino"))
	assert.ErrorIs(t, err, ErrUnknownTab)
	assert.ErrorIs(t, err, model.ErrPrecondition)
	assert.Equal(t, model.TabFamily, e.State().CurrentTab)
}

func TestState_IsACopy(t *testing.T) {
	e, _ := loaded(t, sim.Constant(0.5), adult())
	s := e.State()
	s.Character.Stats.Money = 0
	s.Events = append(s.Events, model.Event{Title: "x"})
	assert.Equal(t, 1000, e.State().Character.Stats.Money)
	assert.Empty(t, e.State().Events)
}

func TestInteractFamily_UnknownMember(t *testing.T) {
	e, _ := loaded(t, sim.Constant(0.5), adult())
	_, err := e.InteractFamily(context.Background(), "nobody", family.ActionTalk)
	assert.ErrorIs(t, err, model.ErrPrecondition)
	assert.Empty(t, e.State().Events)
}
