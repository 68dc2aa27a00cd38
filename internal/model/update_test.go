package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRelationship_RejectsSecondActive(t *testing.T) {
	c := Character{Age: 17}
	c, err := c.AddRelationship(Relationship{ID: "a", IsActive: true, Kind: RelationshipDating})
	require.NoError(t, err)

	_, err = c.AddRelationship(Relationship{ID: "b", IsActive: true, Kind: RelationshipDating})
	require.ErrorIs(t, err, ErrAlreadyDating)
	require.ErrorIs(t, err, ErrPrecondition)

	c, err = c.AddRelationship(Relationship{ID: "c", Kind: RelationshipCrush})
	require.NoError(t, err)
	assert.Len(t, c.Relationships, 2)
}

func TestEndRelationship_SetsEndedAtAndAllowsNew(t *testing.T) {
	c := Character{Age: 20}
	c, err := c.AddRelationship(Relationship{ID: "a", IsActive: true})
	require.NoError(t, err)

	c, err = c.EndRelationship("a")
	require.NoError(t, err)
	r, ok := c.FindRelationship("a")
	require.True(t, ok)
	assert.False(t, r.IsActive)
	require.NotNil(t, r.EndedAt)
	assert.Equal(t, 20, *r.EndedAt)
	assert.Equal(t, RelationshipEx, r.Kind)

	_, err = c.EndRelationship("a")
	assert.ErrorIs(t, err, ErrRelationshipEnded)

	_, err = c.AddRelationship(Relationship{ID: "b", IsActive: true})
	assert.NoError(t, err)
}

func TestUpdateRelationship_CannotReactivateAlongsideAnother(t *testing.T) {
	c := Character{Relationships: []Relationship{{ID: "a"}, {ID: "b", IsActive: true}}}
	_, err := c.UpdateRelationship(Relationship{ID: "a", IsActive: true})
	assert.ErrorIs(t, err, ErrAlreadyDating)
}

func TestClone_DoesNotAlias(t *testing.T) {
	release := 30.0
	c := Character{
		Family:           Family{Siblings: []FamilyMember{{ID: "s1", Closeness: 10}}},
		Education:        Education{Grades: map[string]int{"Math": 70}},
		PrisonReleaseAge: &release,
		Finances:         Finances{Assets: []OwnedAsset{{ID: "x", CurrentValue: 5}}},
	}
	cp := c.Clone()
	cp.Family.Siblings[0].Closeness = 99
	cp.Education.Grades["Math"] = 10
	*cp.PrisonReleaseAge = 99
	cp.Finances.Assets[0].CurrentValue = 1

	assert.Equal(t, 10, c.Family.Siblings[0].Closeness)
	assert.Equal(t, 70, c.Education.Grades["Math"])
	assert.Equal(t, 30.0, *c.PrisonReleaseAge)
	assert.Equal(t, 5, c.Finances.Assets[0].CurrentValue)
}

func TestImprison_ReleaseNeverBeforeCurrentAge(t *testing.T) {
	c := Character{Age: 30}.Imprison(25)
	assert.True(t, c.IsInPrison)
	assert.Equal(t, 30.0, c.ReleaseAge())

	c = c.Release()
	assert.False(t, c.IsInPrison)
	assert.Nil(t, c.PrisonReleaseAge)
}

func TestWithFamilyMember_ReplacesByID(t *testing.T) {
	c := Character{Family: Family{
		Mother:   FamilyMember{ID: "m", Closeness: 50},
		Father:   FamilyMember{ID: "f", Closeness: 50},
		Siblings: []FamilyMember{{ID: "s", Closeness: 50}},
	}}
	c2 := c.WithFamilyMember(FamilyMember{ID: "s", Closeness: 80})
	assert.Equal(t, 80, c2.Family.Siblings[0].Closeness)
	assert.Equal(t, 50, c.Family.Siblings[0].Closeness)
	assert.Len(t, c2.FamilyMembers(), 3)
}
