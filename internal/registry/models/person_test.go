package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTag(t *testing.T, raw string) Tag {
	t.Helper()
	tag, err := ParseTag(raw)
	require.NoError(t, err)
	return tag
}

func TestNewPerson(t *testing.T) {
	t.Run("requires name and nric", func(t *testing.T) {
		_, err := NewPerson(PersonFields{Nric: "S1234567A"})
		assert.Error(t, err)
		_, err = NewPerson(PersonFields{Name: "Amy"})
		assert.Error(t, err)
	})

	t.Run("normalizes tag sets", func(t *testing.T) {
		p, err := NewPerson(PersonFields{
			Name: "Amy", Nric: "S1234567A",
			Tags: []Tag{mustTag(t, "wheelchair"), mustTag(t, "diabetic"), mustTag(t, "wheelchair")},
		})
		require.NoError(t, err)
		assert.Equal(t, []Tag{"diabetic", "wheelchair"}, p.Tags())
		assert.True(t, p.HasTag("Diabetic"))
	})

	t.Run("getters return copies", func(t *testing.T) {
		p, err := NewPerson(PersonFields{Name: "Amy", Nric: "S1234567A", Tags: []Tag{"a"}})
		require.NoError(t, err)
		tags := p.Tags()
		tags[0] = "mutated"
		fields := p.Fields()
		fields.Tags[0] = "mutated"
		assert.Equal(t, []Tag{"a"}, p.Tags())
	})
}

func TestElderlyAndVolunteer(t *testing.T) {
	person, err := NewPerson(PersonFields{Name: "Amy Tan", Nric: "S1234567A", Phone: "91234567", Region: RegionEast})
	require.NoError(t, err)

	e := NewElderly(person, RiskHigh)
	assert.Equal(t, CategoryElderly, e.Category())
	assert.Equal(t, "Amy Tan; NRIC: S1234567A; Phone: 91234567; Region: EAST; Risk level: HIGH", e.String())

	renamed, err := NewPerson(PersonFields{Name: "Amy Lim", Nric: "S1234567A"})
	require.NoError(t, err)
	other := NewElderly(renamed, "")
	assert.True(t, e.IsSame(other))
	assert.False(t, e.Equal(other))

	cpr, err := ParseMedicalTag("CPR, BASIC")
	require.NoError(t, err)
	v := NewVolunteer(person, []MedicalQualificationTag{cpr, cpr})
	assert.Len(t, v.MedicalTags(), 1)
	assert.Equal(t, CategoryVolunteer, v.Category())

	members := []Member{e, v}
	for _, m := range members {
		assert.Equal(t, Nric("S1234567A"), m.Nric())
		assert.False(t, m.HasTag("diabetic"))
	}
}

func TestPair(t *testing.T) {
	ep, err := NewPerson(PersonFields{Name: "Amy", Nric: "S1234567A"})
	require.NoError(t, err)
	vp, err := NewPerson(PersonFields{Name: "Ben", Nric: "T7654321B"})
	require.NoError(t, err)

	p := NewPair(NewElderly(ep, ""), NewVolunteer(vp, nil))
	assert.Equal(t, PairKey{Elderly: "S1234567A", Volunteer: "T7654321B"}, p.Key())
	assert.Equal(t, "Elderly: Amy (S1234567A); Volunteer: Ben (T7654321B)", p.String())

	t.Run("equality is by nric tuple", func(t *testing.T) {
		renamed, err := NewPerson(PersonFields{Name: "Amy Lim", Nric: "S1234567A", Phone: "91234567"})
		require.NoError(t, err)
		edited := NewPair(NewElderly(renamed, RiskLow), NewVolunteer(vp, nil))
		assert.True(t, p.Equal(edited))

		other, err := NewPerson(PersonFields{Name: "Cal", Nric: "T1111111C"})
		require.NoError(t, err)
		assert.False(t, p.Equal(NewPair(NewElderly(ep, ""), NewVolunteer(other, nil))))
	})
}
