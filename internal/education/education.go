// Package education derives school level from age and rolls school events.
package education

import (
	"math"

	"lifepath/internal/model"
	"lifepath/internal/sim"
)

var Subjects = []string{"Math", "English", "Science", "History", "Art", "PE"}

var Clubs = []string{
	"Drama Club", "Chess Club", "Basketball Team", "Soccer Team", "Debate Team",
	"Art Club", "Music Band", "Science Club", "Student Council", "Yearbook Committee",
}

// LevelNames are the display names of each level.
var LevelNames = map[model.EducationLevel]string{
	model.LevelNone:       "Not in School",
	model.LevelPreschool:  "Preschool",
	model.LevelElementary: "Elementary School",
	model.LevelMiddle:     "Middle School",
	model.LevelHigh:       "High School",
	model.LevelGraduated:  "Graduated",
}

// LevelForAge is the only way a level is decided.
func LevelForAge(age int) model.EducationLevel {
	switch {
	case age < 3:
		return model.LevelNone
	case age < 5:
		return model.LevelPreschool
	case age < 11:
		return model.LevelElementary
	case age < 14:
		return model.LevelMiddle
	case age < 18:
		return model.LevelHigh
	}
	return model.LevelGraduated
}

// ComputeGPA converts the average percentage grade to a 4.0 scale,
// rounded to two decimals.
func ComputeGPA(grades map[string]int) float64 {
	if len(grades) == 0 {
		return 0
	}
	sum := 0
	for _, g := range grades {
		sum += g
	}
	avg := float64(sum) / float64(len(grades))
	return math.Round(avg/25*100) / 100
}

func Initial() model.Education {
	return model.Education{
		CurrentLevel: model.LevelNone,
		Grades:       map[string]int{},
		Clubs:        []string{},
		Achievements: []string{},
	}
}

// Update recomputes the level from age. A level change deals fresh grades of
// 60-99 per subject; leaving school keeps the final GPA.
func Update(env sim.Env, c model.Character) model.Character {
	level := LevelForAge(c.Age)
	if level == c.Education.CurrentLevel {
		return c
	}
	c = c.Clone()
	c.Education.CurrentLevel = level
	if !level.InSchool() {
		c.Education.Grades = map[string]int{}
		return c
	}
	grades := make(map[string]int, len(Subjects))
	for _, s := range Subjects {
		grades[s] = env.IntRange(60, 99)
	}
	c.Education.Grades = grades
	c.Education.GPA = ComputeGPA(grades)
	return c
}
