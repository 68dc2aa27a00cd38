// Package career holds the job catalogue, work actions and college.
package career

import (
	"fmt"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

type JobCategory string

const (
	Entry        JobCategory = "entry"
	Skilled      JobCategory = "skilled"
	Professional JobCategory = "professional"
	Executive    JobCategory = "executive"
)

type Requirements struct {
	Education  model.EducationLevel  `json:"education,omitempty"`
	Experience int                   `json:"experience,omitempty"`
	Stats      map[model.StatKey]int `json:"stats,omitempty"`
}

type SalaryBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Job struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Category     JobCategory  `json:"category"`
	Requirements Requirements `json:"requirements"`
	Salary       SalaryBand   `json:"salary"`
	Description  string       `json:"description"`
	CareerPath   []string     `json:"careerPath"`
}

var Jobs = []Job{
	{
		ID:          "cashier",
		Title:       "Cashier",
		Category:    Entry,
		Salary:      SalaryBand{Min: 20000, Max: 25000},
		Description: "Handle customer transactions at a retail store.",
		CareerPath:  []string{"Shift Supervisor", "Assistant Manager", "Store Manager"},
	},
	{
		ID:          "waiter",
		Title:       "Waiter/Waitress",
		Category:    Entry,
		Salary:      SalaryBand{Min: 18000, Max: 30000},
		Description: "Serve customers at a restaurant.",
		CareerPath:  []string{"Head Waiter", "Restaurant Supervisor", "Restaurant Manager"},
	},
	{
		ID:          "janitor",
		Title:       "Janitor",
		Category:    Entry,
		Salary:      SalaryBand{Min: 22000, Max: 28000},
		Description: "Maintain cleanliness in office buildings.",
		CareerPath:  []string{"Cleaning Supervisor", "Facility Manager"},
	},
	{
		ID:           "mechanic",
		Title:        "Auto Mechanic",
		Category:     Skilled,
		Requirements: Requirements{Education: model.LevelGraduated},
		Salary:       SalaryBand{Min: 35000, Max: 55000},
		Description:  "Repair and maintain vehicles.",
		CareerPath:   []string{"Senior Mechanic", "Shop Foreman", "Shop Owner"},
	},
	{
		ID:           "electrician",
		Title:        "Electrician",
		Category:     Skilled,
		Requirements: Requirements{Education: model.LevelGraduated},
		Salary:       SalaryBand{Min: 40000, Max: 65000},
		Description:  "Install and repair electrical systems.",
		CareerPath:   []string{"Master Electrician", "Electrical Contractor"},
	},
	{
		ID:           "teacher",
		Title:        "Teacher",
		Category:     Professional,
		Requirements: Requirements{
			Education: model.LevelGraduated,
			Stats:     map[model.StatKey]int{model.StatSmarts: 70},
		},
		Salary:      SalaryBand{Min: 45000, Max: 65000},
		Description: "Educate students in elementary or high school.",
		CareerPath:  []string{"Department Head", "Vice Principal", "Principal"},
	},
	{
		ID:           "nurse",
		Title:        "Registered Nurse",
		Category:     Professional,
		Requirements: Requirements{
			Education: model.LevelGraduated,
			Stats:     map[model.StatKey]int{model.StatSmarts: 75, model.StatHealth: 60},
		},
		Salary:      SalaryBand{Min: 55000, Max: 80000},
		Description: "Provide medical care to patients.",
		CareerPath:  []string{"Charge Nurse", "Nurse Manager", "Director of Nursing"},
	},
	{
		ID:           "accountant",
		Title:        "Accountant",
		Category:     Professional,
		Requirements: Requirements{
			Education: model.LevelGraduated,
			Stats:     map[model.StatKey]int{model.StatSmarts: 80},
		},
		Salary:      SalaryBand{Min: 50000, Max: 75000},
		Description: "Manage financial records and taxes.",
		CareerPath:  []string{"Senior Accountant", "Accounting Manager", "CFO"},
	},
	{
		ID:           "software_engineer",
		Title:        "Software Engineer",
		Category:     Professional,
		Requirements: Requirements{
			Education: model.LevelGraduated,
			Stats:     map[model.StatKey]int{model.StatSmarts: 85},
		},
		Salary:      SalaryBand{Min: 70000, Max: 120000},
		Description: "Develop software applications and systems.",
		CareerPath:  []string{"Senior Engineer", "Tech Lead", "Engineering Manager"},
	},
	{
		ID:           "ceo",
		Title:        "CEO",
		Category:     Executive,
		Requirements: Requirements{
			Education:  model.LevelGraduated,
			Experience: 15,
			Stats:      map[model.StatKey]int{model.StatSmarts: 90, model.StatReputation: 80},
		},
		Salary:      SalaryBand{Min: 200000, Max: 500000},
		Description: "Lead a major corporation.",
		CareerPath:  []string{},
	},
}

func FindJob(id string) (Job, bool) {
	for _, j := range Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

// Qualifies reports whether c meets every requirement of j. Education is a
// minimum level.
func Qualifies(c model.Character, j Job) bool {
	req := j.Requirements
	if req.Education != "" && c.Education.CurrentLevel.Rank() < req.Education.Rank() {
		return false
	}
	if req.Experience > 0 && c.Career.WorkExperience < req.Experience {
		return false
	}
	for stat, need := range req.Stats {
		if c.Stats.Get(stat) < need {
			return false
		}
	}
	return true
}

func Available(c model.Character) []Job {
	var out []Job
	for _, j := range Jobs {
		if Qualifies(c, j) {
			out = append(out, j)
		}
	}
	return out
}

// HireChance starts at the policy base, rewards stats well above the
// requirement and adds up to 0.3 for experience.
func HireChance(p sim.Policy, c model.Character, j Job) float64 {
	chance := p.JobBaseChance
	for stat, need := range j.Requirements.Stats {
		switch have := c.Stats.Get(stat); {
		case have >= need+20:
			chance += 0.2
		case have >= need+10:
			chance += 0.1
		}
	}
	if xp := c.Career.WorkExperience; xp > 0 {
		chance += min(0.3, float64(xp)*0.02)
	}
	return chance
}

// Apply draws once against HireChance. Applicants who miss a requirement are
// turned down without a draw. A rejection leaves c untouched and only
// reports the negative event.
func Apply(env sim.Env, c model.Character, jobID string) (model.Character, model.Event, bool, error) {
	j, ok := FindJob(jobID)
	if !ok {
		return c, model.Event{}, false, fmt.Errorf("%w: job %q", model.ErrNotFound, jobID)
	}
	if !Qualifies(c, j) || !env.Chance(HireChance(env.Policy, c, j)) {
		ev := env.Event(c.Age, "Job Application Rejected",
			fmt.Sprintf("Your application for %s was rejected. Keep trying!", j.Title),
			model.Delta{model.StatHappiness: -5}, model.EventNegative, model.CategoryCareer)
		return c, ev, false, nil
	}

	salary := j.Salary.Min + env.Intn(j.Salary.Max-j.Salary.Min)
	c = c.Clone()
	c.Career.HasJob = true
	c.Career.JobID = j.ID
	c.Career.JobTitle = j.Title
	c.Career.JobLevel = 1
	c.Career.JobPerformance = 50
	c.Career.Salary = salary
	c.Career.WorkExperience++
	c.Career.JobsHeld = append(c.Career.JobsHeld, j.Title)

	changes := model.Delta{model.StatHappiness: 10, model.StatMoney: 1000}
	c = c.ApplyDeltaFloored(changes)
	ev := env.Event(c.Age, "Got Hired!",
		fmt.Sprintf("You were hired as a %s with a starting salary of %s/year!", j.Title, model.Dollars(salary)),
		changes, model.EventPositive, model.CategoryCareer)
	return c, ev, true, nil
}

type WorkAction string

const (
	WorkHarder   WorkAction = "work_harder"
	SlackOff     WorkAction = "slack_off"
	AskPromotion WorkAction = "ask_promotion"
	Quit         WorkAction = "quit"
)

var WorkActions = []WorkAction{WorkHarder, SlackOff, AskPromotion, Quit}

// DefaultSalary stands in for jobs that never set one, such as a first job.
const DefaultSalary = 30000

func Work(env sim.Env, c model.Character, action WorkAction) (model.Character, model.Event, error) {
	if !c.Career.HasJob {
		return c, model.Event{}, model.ErrNotEmployed
	}
	c = c.Clone()

	var ev model.Event
	switch action {
	case WorkHarder:
		c.Career.JobPerformance = model.Clamp(c.Career.JobPerformance + env.IntRange(10, 24))
		ev = env.Event(c.Age, "Worked Harder", "You put in extra effort at work. Your boss noticed your dedication!",
			model.Delta{model.StatHappiness: -2, model.StatMoney: 200}, model.EventPositive, model.CategoryCareer)
	case SlackOff:
		c.Career.JobPerformance = model.Clamp(c.Career.JobPerformance - env.IntRange(10, 29))
		ev = env.Event(c.Age, "Slacked Off", "You took it easy at work today. It felt good but your performance suffered.",
			model.Delta{model.StatHappiness: 5, model.StatMoney: -100}, model.EventNegative, model.CategoryCareer)
	case AskPromotion:
		p := float64(c.Career.JobPerformance) / 100 * env.Policy.PromotionFactor
		if !env.Chance(p) {
			ev = env.Event(c.Age, "Promotion Denied", "Your request for a promotion was denied. Maybe work harder next time.",
				model.Delta{model.StatHappiness: -8}, model.EventNegative, model.CategoryCareer)
			break
		}
		salary := c.Career.Salary
		if salary == 0 {
			salary = DefaultSalary
		}
		raise := salary / 5
		c.Career.Salary = salary + raise
		c.Career.JobLevel = max(1, c.Career.JobLevel) + 1
		ev = env.Event(c.Age, "Got Promoted!",
			fmt.Sprintf("Congratulations! You got promoted and received a %s raise!", model.Dollars(raise)),
			model.Delta{model.StatHappiness: 15, model.StatMoney: 2000}, model.EventPositive, model.CategoryCareer)
	case Quit:
		title := c.Career.JobTitle
		c = LeaveJob(c)
		ev = env.Event(c.Age, "Quit Job", fmt.Sprintf("You quit your job as a %s. Time for a new chapter!", title),
			model.Delta{model.StatHappiness: 5, model.StatMoney: -500}, model.EventNeutral, model.CategoryCareer)
	default:
		return c, model.Event{}, fmt.Errorf("%w: work action %q", model.ErrUnknownAction, action)
	}
	return c.ApplyDeltaFloored(ev.StatChanges), ev, nil
}

// LeaveJob clears the current position but keeps experience and history.
func LeaveJob(c model.Character) model.Character {
	c.Career.HasJob = false
	c.Career.JobID = ""
	c.Career.JobTitle = ""
	c.Career.JobLevel = 0
	c.Career.JobPerformance = 0
	c.Career.Salary = 0
	return c
}
