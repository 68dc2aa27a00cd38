package model

type EducationLevel string

const (
	LevelNone       EducationLevel = "none"
	LevelPreschool  EducationLevel = "preschool"
	LevelElementary EducationLevel = "elementary"
	LevelMiddle     EducationLevel = "middle"
	LevelHigh       EducationLevel = "high"
	LevelGraduated  EducationLevel = "graduated"
)

// EducationLevels is ordered from youngest to oldest.
var EducationLevels = []EducationLevel{
	LevelNone,
	LevelPreschool,
	LevelElementary,
	LevelMiddle,
	LevelHigh,
	LevelGraduated,
}

// Rank orders levels; unknown levels rank below none.
func (l EducationLevel) Rank() int {
	for i, known := range EducationLevels {
		if l == known {
			return i
		}
	}
	return -1
}

// InSchool reports whether grades are tracked at this level.
func (l EducationLevel) InSchool() bool {
	return l != LevelNone && l != LevelGraduated && l.Rank() >= 0
}
