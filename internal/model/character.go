package model

import "time"

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type Relation string

const (
	RelationMother  Relation = "mother"
	RelationFather  Relation = "father"
	RelationSibling Relation = "sibling"
)

type Personality string

const (
	PersonalityStrict     Personality = "strict"
	PersonalityLoving     Personality = "loving"
	PersonalityDistant    Personality = "distant"
	PersonalitySupportive Personality = "supportive"
	PersonalityRebellious Personality = "rebellious"
)

var Personalities = []Personality{
	PersonalityStrict,
	PersonalityLoving,
	PersonalityDistant,
	PersonalitySupportive,
	PersonalityRebellious,
}

type FamilyMember struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Relation    Relation    `json:"relation"`
	Age         int         `json:"age"`
	Closeness   int         `json:"closeness"`
	IsAlive     bool        `json:"isAlive"`
	Personality Personality `json:"personality"`
}

type Family struct {
	Mother   FamilyMember   `json:"mother"`
	Father   FamilyMember   `json:"father"`
	Siblings []FamilyMember `json:"siblings"`
}

type RelationshipKind string

const (
	RelationshipDating RelationshipKind = "dating"
	RelationshipEx     RelationshipKind = "ex"
	RelationshipCrush  RelationshipKind = "crush"
)

type RelationshipStats struct {
	Trust      int `json:"trust"`
	Attraction int `json:"attraction"`
	Loyalty    int `json:"loyalty"`
}

type Relationship struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Kind      RelationshipKind  `json:"type"`
	Age       int               `json:"age"`
	Stats     RelationshipStats `json:"stats"`
	StartedAt int               `json:"startedAt"`
	EndedAt   *int              `json:"endedAt,omitempty"`
	IsActive  bool              `json:"isActive"`
}

type ChildStats struct {
	Health    int `json:"health"`
	Smarts    int `json:"smarts"`
	Looks     int `json:"looks"`
	Happiness int `json:"happiness"`
}

type ChildGenetics struct {
	HealthPredisposition int `json:"healthPredisposition"`
	LongevityGenes       int `json:"longevityGenes"`
}

type Child struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Gender          Gender        `json:"gender"`
	Age             int           `json:"age"`
	BornAt          int           `json:"bornAt"`
	Stats           ChildStats    `json:"stats"`
	Relationship    int           `json:"relationship"`
	IsAlive         bool          `json:"isAlive"`
	Achievements    []string      `json:"achievements"`
	CurrentActivity string        `json:"currentActivity"`
	Genetics        ChildGenetics `json:"genetics"`
	OtherParent     string        `json:"otherParent,omitempty"`
}

type Education struct {
	CurrentLevel EducationLevel `json:"currentLevel"`
	Grades       map[string]int `json:"grades"`
	GPA          float64        `json:"gpa"`
	Clubs        []string       `json:"clubs"`
	Achievements []string       `json:"achievements"`
}

type College struct {
	IsEnrolled   bool     `json:"isEnrolled"`
	Major        string   `json:"major,omitempty"`
	Year         int      `json:"year,omitempty"`
	GPA          float64  `json:"gpa,omitempty"`
	Tuition      int      `json:"tuition,omitempty"`
	Scholarships int      `json:"scholarships,omitempty"`
	Loans        int      `json:"loans,omitempty"`
	Degrees      []string `json:"degrees,omitempty"`
}

type Career struct {
	HasJob         bool     `json:"hasJob"`
	JobID          string   `json:"jobId,omitempty"`
	JobTitle       string   `json:"jobTitle,omitempty"`
	JobLevel       int      `json:"jobLevel,omitempty"`
	JobPerformance int      `json:"jobPerformance,omitempty"`
	Salary         int      `json:"salary,omitempty"`
	WorkExperience int      `json:"workExperience"`
	JobsHeld       []string `json:"jobsHeld"`
	IsRetired      bool     `json:"isRetired,omitempty"`
	Pension        int      `json:"pension,omitempty"`
}

type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type CriminalRecord struct {
	ID         string    `json:"id"`
	Crime      string    `json:"crime"`
	Age        int       `json:"age"`
	Punishment string    `json:"punishment"`
	Timestamp  time.Time `json:"timestamp"`
}

type LawyerQuality string

const (
	LawyerPublicDefender LawyerQuality = "public_defender"
	LawyerPrivate        LawyerQuality = "private"
	LawyerElite          LawyerQuality = "elite"
)

type CriminalStatus struct {
	WantedLevel          int           `json:"wantedLevel"`
	ActiveWarrants       []string      `json:"activeWarrants"`
	TotalCrimesCommitted int           `json:"totalCrimesCommitted"`
	TimesSentenced       int           `json:"timesSentenced"`
	TotalJailTime        float64       `json:"totalJailTime"`
	IsOnTrial            bool          `json:"isOnTrial"`
	HasLawyer            bool          `json:"hasLawyer"`
	LawyerQuality        LawyerQuality `json:"lawyerQuality"`
}

// MaxWantedLevel caps CriminalStatus.WantedLevel.
const MaxWantedLevel = 5

func DefaultCriminalStatus() CriminalStatus {
	return CriminalStatus{
		ActiveWarrants: []string{},
		LawyerQuality:  LawyerPublicDefender,
	}
}

type PrisonRecord struct {
	ID            string  `json:"id"`
	Crime         string  `json:"crime"`
	SentenceYears float64 `json:"sentenceYears"`
	StartAge      int     `json:"startAge"`
	ReleaseAge    float64 `json:"releaseAge"`
	Escaped       bool    `json:"escaped"`
	Released      bool    `json:"released"`
}

type Beneficiary struct {
	Name       string  `json:"name"`
	Relation   string  `json:"relation"`
	Percentage float64 `json:"percentage"`
}

type CharityDonation struct {
	Charity string `json:"charity"`
	Amount  int    `json:"amount"`
}

type Will struct {
	Beneficiaries    []Beneficiary     `json:"beneficiaries"`
	CharityDonations []CharityDonation `json:"charityDonations"`
	LastUpdated      int               `json:"lastUpdated"`
}

func (w Will) TotalCharity() int {
	total := 0
	for _, d := range w.CharityDonations {
		total += d.Amount
	}
	return total
}

type LifeSummary struct {
	TotalYearsLived      int      `json:"totalYearsLived"`
	CauseOfDeath         string   `json:"causeOfDeath"`
	TotalWealth          int      `json:"totalWealth"`
	JobsHeld             []string `json:"jobsHeld"`
	RelationshipsCount   int      `json:"relationshipsCount"`
	ChildrenCount        int      `json:"childrenCount"`
	CrimesCommitted      int      `json:"crimesCommitted"`
	AchievementsUnlocked int      `json:"achievementsUnlocked"`
	LegacyScore          int      `json:"legacyScore"`
	KeyEvents            []Event  `json:"keyEvents"`
	FinalStats           Stats    `json:"finalStats"`
}

// Character is the aggregate root of one simulated life.
type Character struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Gender    Gender    `json:"gender"`
	Age       int       `json:"age"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`

	Stats  Stats  `json:"stats"`
	Family Family `json:"family"`

	Relationships []Relationship `json:"relationships"`
	Children      []Child        `json:"children"`

	Education    Education     `json:"education"`
	Achievements []Achievement `json:"achievements"`
	Career       Career        `json:"career"`
	College      College       `json:"college"`

	Diseases  []Disease `json:"diseases"`
	Insurance Insurance `json:"insurance"`
	Genetics  Genetics  `json:"genetics"`

	CriminalRecord   []CriminalRecord `json:"criminalRecord"`
	CriminalStatus   CriminalStatus   `json:"criminalStatus"`
	PrisonRecord     []PrisonRecord   `json:"prisonRecord"`
	IsInPrison       bool             `json:"isInPrison"`
	PrisonReleaseAge *float64         `json:"prisonReleaseAge,omitempty"`

	RiskMeter        int  `json:"riskMeter"`
	IsGrounded       bool `json:"isGrounded"`
	GroundedUntilAge int  `json:"groundedUntilAge"`
	IsPregnant       bool `json:"isPregnant"`
	PregnancyDueAge  int  `json:"pregnancyDueAge,omitempty"`

	Finances Finances `json:"finances"`
	Will     Will     `json:"will"`

	IsAlive     bool         `json:"isAlive"`
	DeathCause  string       `json:"deathCause,omitempty"`
	DeathAge    int          `json:"deathAge,omitempty"`
	LifeSummary *LifeSummary `json:"lifeSummary,omitempty"`
	LegacyScore int          `json:"legacyScore"`
}
