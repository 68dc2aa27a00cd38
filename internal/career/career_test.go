package career

import (
	"testing"

	"lifepath/internal/model"
	"lifepath/internal/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adult() model.Character {
	return model.Character{
		Age:       22,
		IsAlive:   true,
		Stats:     model.Stats{Health: 70, Smarts: 60, Happiness: 50, Reputation: 50, Money: 5000},
		Education: model.Education{CurrentLevel: model.LevelGraduated},
	}
}

func TestAvailable(t *testing.T) {
	c := adult()
	c.Education.CurrentLevel = model.LevelHigh
	ids := func(jobs []Job) []string {
		var out []string
		for _, j := range jobs {
			out = append(out, j.ID)
		}
		return out
	}
	assert.Equal(t, []string{"cashier", "waiter", "janitor"}, ids(Available(c)))

	c = adult()
	c.Stats.Smarts = 80
	got := ids(Available(c))
	assert.Contains(t, got, "accountant")
	assert.Contains(t, got, "teacher")
	assert.NotContains(t, got, "software_engineer")
	assert.NotContains(t, got, "ceo")

	c.Stats.Smarts = 95
	c.Stats.Reputation = 85
	c.Career.WorkExperience = 15
	assert.Contains(t, ids(Available(c)), "ceo")
}

func TestHireChance(t *testing.T) {
	p := sim.DefaultPolicy()
	teacher, _ := FindJob("teacher")
	c := adult()
	c.Stats.Smarts = 70
	assert.InDelta(t, 0.5, HireChance(p, c, teacher), 1e-9)
	c.Stats.Smarts = 80
	assert.InDelta(t, 0.6, HireChance(p, c, teacher), 1e-9)
	c.Stats.Smarts = 90
	assert.InDelta(t, 0.7, HireChance(p, c, teacher), 1e-9)
	c.Career.WorkExperience = 50
	assert.InDelta(t, 1.0, HireChance(p, c, teacher), 1e-9)
}

func TestApply_RejectionLeavesStateUnchanged(t *testing.T) {
	c := adult()
	c.Stats.Smarts = 10
	// a winning draw cannot hire someone far below the requirements
	got, ev, hired, err := Apply(sim.Deterministic(sim.Constant(0)), c, "ceo")
	require.NoError(t, err)
	assert.False(t, hired)
	assert.False(t, got.Career.HasJob)
	assert.Equal(t, c.Stats, got.Stats)
	assert.Equal(t, "Job Application Rejected", ev.Title)
	assert.Equal(t, model.EventNegative, ev.Type)
}

func TestApply_UnluckyDraw(t *testing.T) {
	got, ev, hired, err := Apply(sim.Deterministic(sim.Constant(0.9)), adult(), "janitor")
	require.NoError(t, err)
	assert.False(t, hired)
	assert.False(t, got.Career.HasJob)
	assert.Equal(t, "Job Application Rejected", ev.Title)
}

func TestApply_Hired(t *testing.T) {
	c := adult()
	c.Career.WorkExperience = 2
	got, ev, hired, err := Apply(sim.Deterministic(sim.NewScripted(0.1, 0.5)), c, "cashier")
	require.NoError(t, err)
	require.True(t, hired)
	assert.Equal(t, "Got Hired!", ev.Title)
	assert.Equal(t, "cashier", got.Career.JobID)
	assert.Equal(t, 22500, got.Career.Salary)
	assert.Equal(t, 50, got.Career.JobPerformance)
	assert.Equal(t, 1, got.Career.JobLevel)
	assert.Equal(t, 3, got.Career.WorkExperience)
	assert.Equal(t, []string{"Cashier"}, got.Career.JobsHeld)
	assert.Equal(t, 6000, got.Stats.Money)
	assert.Contains(t, ev.Description, "$22,500/year")
}

func TestApply_UnknownJob(t *testing.T) {
	_, _, _, err := Apply(sim.Deterministic(sim.Constant(0)), adult(), "astronaut")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func employed() model.Character {
	c := adult()
	c.Career = model.Career{HasJob: true, JobID: "cashier", JobTitle: "Cashier", JobLevel: 1, JobPerformance: 50, Salary: 20000}
	return c
}

func TestWork(t *testing.T) {
	_, _, err := Work(sim.Deterministic(sim.Constant(0)), adult(), WorkHarder)
	assert.ErrorIs(t, err, model.ErrNotEmployed)

	c, ev, err := Work(sim.Deterministic(sim.Constant(0)), employed(), WorkHarder)
	require.NoError(t, err)
	assert.Equal(t, "Worked Harder", ev.Title)
	assert.Equal(t, 60, c.Career.JobPerformance)
	assert.Equal(t, 5200, c.Stats.Money)

	c, _, err = Work(sim.Deterministic(sim.Constant(0)), employed(), SlackOff)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Career.JobPerformance)

	c, ev, err = Work(sim.Deterministic(sim.Constant(0)), employed(), AskPromotion)
	require.NoError(t, err)
	assert.Equal(t, "Got Promoted!", ev.Title)
	assert.Equal(t, 24000, c.Career.Salary)
	assert.Equal(t, 2, c.Career.JobLevel)

	c, ev, err = Work(sim.Deterministic(sim.Constant(0.9)), employed(), AskPromotion)
	require.NoError(t, err)
	assert.Equal(t, "Promotion Denied", ev.Title)
	assert.Equal(t, 20000, c.Career.Salary)

	c, ev, err = Work(sim.Deterministic(sim.Constant(0)), employed(), Quit)
	require.NoError(t, err)
	assert.Equal(t, "Quit Job", ev.Title)
	assert.Contains(t, ev.Description, "Cashier")
	assert.False(t, c.Career.HasJob)
	assert.Zero(t, c.Career.Salary)

	_, _, err = Work(sim.Deterministic(sim.Constant(0)), employed(), "nap")
	assert.ErrorIs(t, err, model.ErrUnknownAction)
}

func TestQuit_MoneyNeverNegative(t *testing.T) {
	c := employed()
	c.Stats.Money = 100
	c, _, err := Work(sim.Deterministic(sim.Constant(0)), c, Quit)
	require.NoError(t, err)
	assert.Zero(t, c.Stats.Money)
}

func TestEnroll(t *testing.T) {
	c := adult()
	c.Stats.Money = 10000
	// scholarship of 0 with the first draw
	got, ev, err := Enroll(sim.Deterministic(sim.Constant(0)), c, "Nursing")
	require.NoError(t, err)
	assert.True(t, got.College.IsEnrolled)
	assert.Equal(t, 1, got.College.Year)
	assert.Equal(t, 40000, got.College.Loans)
	assert.Equal(t, 40000, got.Finances.Debt)
	assert.Zero(t, got.Stats.Money)
	assert.Equal(t, model.CategoryEducation, ev.Category)

	_, _, err = Enroll(sim.Deterministic(sim.Constant(0)), got, "Nursing")
	assert.ErrorIs(t, err, model.ErrAlreadyEnrolled)
	_, _, err = Enroll(sim.Deterministic(sim.Constant(0)), c, "Astrology")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestEnroll_PaidFromSavings(t *testing.T) {
	c := adult()
	c.Stats.Money = 100000
	got, _, err := Enroll(sim.Deterministic(sim.Constant(0.5)), c, "Education")
	require.NoError(t, err)
	assert.Equal(t, 7500, got.College.Scholarships)
	assert.Zero(t, got.College.Loans)
	assert.Equal(t, 100000-27500, got.Stats.Money)
}

func TestProgressAndTuition(t *testing.T) {
	c := adult()
	c.Stats.Money = 30000
	c.College = model.College{IsEnrolled: true, Major: "Business", Year: 1, Tuition: 40000, Scholarships: 5000}
	env := sim.Deterministic(sim.Constant(0))

	c, ev := Progress(env, c)
	assert.Nil(t, ev)
	assert.Equal(t, 2, c.College.Year)
	c = SettleTuition(c)
	assert.Zero(t, c.Stats.Money)
	assert.Equal(t, 5000, c.Finances.Debt)
	assert.Equal(t, 5000, c.College.Loans)

	c, _ = Progress(env, c)
	c, _ = Progress(env, c)
	assert.Equal(t, 4, c.College.Year)
	c, ev = Progress(env, c)
	require.NotNil(t, ev)
	assert.Equal(t, "Graduated College", ev.Title)
	assert.False(t, c.College.IsEnrolled)
	assert.Equal(t, []string{"Business"}, c.College.Degrees)
	assert.Zero(t, YearlyTuition(c))
	assert.True(t, HasDegreeFor(c, "ceo"))
	assert.False(t, HasDegreeFor(c, "nurse"))
}

func TestSettleTuition_FirstYearAlreadyPaid(t *testing.T) {
	c := adult()
	c.College = model.College{IsEnrolled: true, Major: "Business", Year: 1, Tuition: 40000}
	assert.Equal(t, c.Stats.Money, SettleTuition(c).Stats.Money)
}

func TestGenerate(t *testing.T) {
	c, ev := Generate(sim.Deterministic(sim.Constant(0)), adult())
	assert.Nil(t, ev)
	assert.False(t, c.Career.HasJob)

	idle := employed()
	idle.Career.JobPerformance = 0
	_, ev = Generate(sim.Deterministic(sim.Constant(0)), idle)
	assert.Nil(t, ev, "zero performance silences the table")

	// every template hits, the first one is picked
	c, ev = Generate(sim.Deterministic(sim.Constant(0)), employed())
	require.NotNil(t, ev)
	assert.Equal(t, "Got a Raise", ev.Title)
	assert.Equal(t, model.CategoryCareer, ev.Category)
	assert.Equal(t, 22000, c.Career.Salary)
}
