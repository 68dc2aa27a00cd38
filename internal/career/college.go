package career

import (
	"fmt"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

type Major struct {
	Name     string   `json:"name"`
	Tuition  int      `json:"tuition"`
	JobBonus []string `json:"jobBonus"`
}

var Majors = []Major{
	{Name: "Business", Tuition: 40000, JobBonus: []string{"accountant", "ceo"}},
	{Name: "Computer Science", Tuition: 45000, JobBonus: []string{"software_engineer"}},
	{Name: "Education", Tuition: 35000, JobBonus: []string{"teacher"}},
	{Name: "Nursing", Tuition: 50000, JobBonus: []string{"nurse"}},
	{Name: "Engineering", Tuition: 48000, JobBonus: []string{"electrician"}},
	{Name: "Liberal Arts", Tuition: 38000, JobBonus: []string{}},
}

const (
	CollegeYears   = 4
	MaxScholarship = 15000
	startingGPA    = 3.0
)

func FindMajor(name string) (Major, bool) {
	for _, m := range Majors {
		if m.Name == name {
			return m, true
		}
	}
	return Major{}, false
}

// Enroll starts year one. Whatever the scholarship and savings cannot cover
// is borrowed and added to debt.
func Enroll(env sim.Env, c model.Character, major string) (model.Character, model.Event, error) {
	if c.College.IsEnrolled {
		return c, model.Event{}, model.ErrAlreadyEnrolled
	}
	m, ok := FindMajor(major)
	if !ok {
		return c, model.Event{}, fmt.Errorf("%w: major %q", model.ErrNotFound, major)
	}

	scholarship := env.Intn(MaxScholarship)
	due := m.Tuition - scholarship
	loan := max(0, due-c.Stats.Money)

	c = c.Clone()
	c.College = model.College{
		IsEnrolled:   true,
		Major:        m.Name,
		Year:         1,
		GPA:          startingGPA,
		Tuition:      m.Tuition,
		Scholarships: scholarship,
		Loans:        loan,
		Degrees:      c.College.Degrees,
	}
	c.Stats.Money = max(0, c.Stats.Money-(due-loan))
	c.Finances.Debt += loan

	changes := model.Delta{model.StatHappiness: 8, model.StatSmarts: 5}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Enrolled in College",
		fmt.Sprintf("You enrolled in college majoring in %s! Tuition: %s, Scholarship: %s, Loans: %s",
			m.Name, model.Dollars(m.Tuition), model.Dollars(scholarship), model.Dollars(loan)),
		changes, model.EventPositive, model.CategoryEducation)
	return c, ev, nil
}

// Progress advances an enrolled student by a year, graduating after the
// final one.
func Progress(env sim.Env, c model.Character) (model.Character, *model.Event) {
	if !c.College.IsEnrolled {
		return c, nil
	}
	c = c.Clone()
	if c.College.Year < CollegeYears {
		c.College.Year++
		return c, nil
	}

	major := c.College.Major
	c.College.IsEnrolled = false
	c.College.Year = 0
	c.College.Degrees = append(c.College.Degrees, major)

	changes := model.Delta{model.StatSmarts: 10, model.StatHappiness: 12}
	c = c.ApplyDelta(changes)
	ev := env.Event(c.Age, "Graduated College",
		fmt.Sprintf("You graduated with a degree in %s!", major),
		changes, model.EventPositive, model.CategoryEducation)
	return c, &ev
}

// YearlyTuition is what an enrolled student owes each year after the first.
func YearlyTuition(c model.Character) int {
	if !c.College.IsEnrolled {
		return 0
	}
	return max(0, c.College.Tuition-c.College.Scholarships)
}

// SettleTuition pays the year's tuition from savings and borrows the rest.
func SettleTuition(c model.Character) model.Character {
	due := YearlyTuition(c)
	if due == 0 || c.College.Year <= 1 {
		return c
	}
	paid := min(due, max(0, c.Stats.Money))
	short := due - paid
	c.Stats.Money -= paid
	c.College.Loans += short
	c.Finances.Debt += short
	return c
}

// HasDegreeFor reports whether one of c's degrees boosts job id.
func HasDegreeFor(c model.Character, jobID string) bool {
	for _, d := range c.College.Degrees {
		m, ok := FindMajor(d)
		if !ok {
			continue
		}
		for _, id := range m.JobBonus {
			if id == jobID {
				return true
			}
		}
	}
	return false
}
