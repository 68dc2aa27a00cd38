package model

import "maps"

// Clone returns a deep copy so callers can update without aliasing.
func (c Character) Clone() Character {
	out := c
	out.Family.Siblings = append([]FamilyMember(nil), c.Family.Siblings...)
	out.Relationships = cloneRelationships(c.Relationships)
	out.Children = make([]Child, len(c.Children))
	for i, ch := range c.Children {
		ch.Achievements = append([]string(nil), ch.Achievements...)
		out.Children[i] = ch
	}
	out.Education.Grades = maps.Clone(c.Education.Grades)
	out.Education.Clubs = append([]string(nil), c.Education.Clubs...)
	out.Education.Achievements = append([]string(nil), c.Education.Achievements...)
	out.Achievements = append([]Achievement(nil), c.Achievements...)
	out.Career.JobsHeld = append([]string(nil), c.Career.JobsHeld...)
	out.College.Degrees = append([]string(nil), c.College.Degrees...)
	out.Diseases = make([]Disease, len(c.Diseases))
	for i, d := range c.Diseases {
		d.StatEffects = d.StatEffects.Clone()
		d.Symptoms = append([]string(nil), d.Symptoms...)
		out.Diseases[i] = d
	}
	out.Genetics.DiseaseResistance = maps.Clone(c.Genetics.DiseaseResistance)
	out.CriminalRecord = append([]CriminalRecord(nil), c.CriminalRecord...)
	out.CriminalStatus.ActiveWarrants = append([]string(nil), c.CriminalStatus.ActiveWarrants...)
	out.PrisonRecord = append([]PrisonRecord(nil), c.PrisonRecord...)
	if c.PrisonReleaseAge != nil {
		v := *c.PrisonReleaseAge
		out.PrisonReleaseAge = &v
	}
	out.Finances.Assets = append([]OwnedAsset(nil), c.Finances.Assets...)
	out.Will.Beneficiaries = append([]Beneficiary(nil), c.Will.Beneficiaries...)
	out.Will.CharityDonations = append([]CharityDonation(nil), c.Will.CharityDonations...)
	if c.LifeSummary != nil {
		s := *c.LifeSummary
		s.JobsHeld = append([]string(nil), s.JobsHeld...)
		s.KeyEvents = append([]Event(nil), s.KeyEvents...)
		out.LifeSummary = &s
	}
	return out
}

func cloneRelationships(in []Relationship) []Relationship {
	out := make([]Relationship, len(in))
	for i, r := range in {
		if r.EndedAt != nil {
			v := *r.EndedAt
			r.EndedAt = &v
		}
		out[i] = r
	}
	return out
}

// ApplyDelta returns c with d applied to its stats. Money is unbounded.
func (c Character) ApplyDelta(d Delta) Character {
	c.Stats = c.Stats.Apply(d)
	return c
}

// ApplyDeltaFloored is ApplyDelta with money floored at zero.
func (c Character) ApplyDeltaFloored(d Delta) Character {
	c.Stats = c.Stats.ApplyFloored(d)
	return c
}

// FamilyMembers lists mother, father and then siblings.
func (c Character) FamilyMembers() []FamilyMember {
	out := make([]FamilyMember, 0, 2+len(c.Family.Siblings))
	out = append(out, c.Family.Mother, c.Family.Father)
	out = append(out, c.Family.Siblings...)
	return out
}

func (c Character) LivingFamily() []FamilyMember {
	var out []FamilyMember
	for _, m := range c.FamilyMembers() {
		if m.IsAlive {
			out = append(out, m)
		}
	}
	return out
}

func (c Character) FindFamilyMember(id string) (FamilyMember, bool) {
	for _, m := range c.FamilyMembers() {
		if m.ID == id {
			return m, true
		}
	}
	return FamilyMember{}, false
}

// WithFamilyMember replaces the member with the same id.
func (c Character) WithFamilyMember(m FamilyMember) Character {
	c = c.Clone()
	switch {
	case c.Family.Mother.ID == m.ID:
		c.Family.Mother = m
	case c.Family.Father.ID == m.ID:
		c.Family.Father = m
	default:
		for i := range c.Family.Siblings {
			if c.Family.Siblings[i].ID == m.ID {
				c.Family.Siblings[i] = m
			}
		}
	}
	return c
}

// ActiveRelationship returns the single relationship currently in effect.
func (c Character) ActiveRelationship() (Relationship, bool) {
	for _, r := range c.Relationships {
		if r.IsActive {
			return r, true
		}
	}
	return Relationship{}, false
}

func (c Character) relationshipIndex(id string) int {
	for i, r := range c.Relationships {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (c Character) FindRelationship(id string) (Relationship, bool) {
	if i := c.relationshipIndex(id); i >= 0 {
		return c.Relationships[i], true
	}
	return Relationship{}, false
}

// AddRelationship appends r, refusing a second active relationship.
func (c Character) AddRelationship(r Relationship) (Character, error) {
	if _, ok := c.ActiveRelationship(); ok && r.IsActive {
		return c, ErrAlreadyDating
	}
	c = c.Clone()
	c.Relationships = append(c.Relationships, r)
	return c, nil
}

// UpdateRelationship replaces the relationship with r.ID. A relationship may
// only become active when no other one is.
func (c Character) UpdateRelationship(r Relationship) (Character, error) {
	i := c.relationshipIndex(r.ID)
	if i < 0 {
		return c, ErrRelationshipNotFound
	}
	if r.IsActive {
		for j, other := range c.Relationships {
			if j != i && other.IsActive {
				return c, ErrAlreadyDating
			}
		}
	}
	r.Stats.Trust = Clamp(r.Stats.Trust)
	r.Stats.Attraction = Clamp(r.Stats.Attraction)
	r.Stats.Loyalty = Clamp(r.Stats.Loyalty)
	c = c.Clone()
	c.Relationships[i] = r
	return c, nil
}

// EndRelationship deactivates id at the character's current age.
func (c Character) EndRelationship(id string) (Character, error) {
	r, ok := c.FindRelationship(id)
	if !ok {
		return c, ErrRelationshipNotFound
	}
	if !r.IsActive {
		return c, ErrRelationshipEnded
	}
	age := c.Age
	r.IsActive = false
	r.Kind = RelationshipEx
	r.EndedAt = &age
	return c.UpdateRelationship(r)
}

func (c Character) FindChild(id string) (Child, bool) {
	for _, ch := range c.Children {
		if ch.ID == id {
			return ch, true
		}
	}
	return Child{}, false
}

func (c Character) WithChild(ch Child) Character {
	c = c.Clone()
	for i := range c.Children {
		if c.Children[i].ID == ch.ID {
			c.Children[i] = ch
		}
	}
	return c
}

func (c Character) LivingChildren() []Child {
	var out []Child
	for _, ch := range c.Children {
		if ch.IsAlive {
			out = append(out, ch)
		}
	}
	return out
}

func (c Character) HasDisease(name string) bool {
	for _, d := range c.Diseases {
		if d.Name == name {
			return true
		}
	}
	return false
}

func (c Character) HasAchievement(id string) bool {
	for _, a := range c.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// HasLicense reports driving eligibility.
func (c Character) HasLicense() bool {
	return c.Age >= 16
}

// Imprison sets the release age and the in-prison flag together.
func (c Character) Imprison(releaseAge float64) Character {
	c = c.Clone()
	if releaseAge < float64(c.Age) {
		releaseAge = float64(c.Age)
	}
	c.IsInPrison = true
	c.PrisonReleaseAge = &releaseAge
	return c
}

// Release clears the in-prison flag and release age.
func (c Character) Release() Character {
	c = c.Clone()
	c.IsInPrison = false
	c.PrisonReleaseAge = nil
	return c
}

// ReleaseAge is the current release age, or the current age if unset.
func (c Character) ReleaseAge() float64 {
	if c.PrisonReleaseAge == nil {
		return float64(c.Age)
	}
	return *c.PrisonReleaseAge
}
