package models

import "slices"

// Volunteer is a person who visits elderly and may hold medical qualifications.
type Volunteer struct {
	Person
	medicalTags []MedicalQualificationTag
}

func NewVolunteer(p Person, medicalTags []MedicalQualificationTag) Volunteer {
	return Volunteer{Person: p, medicalTags: normalizeSet(medicalTags)}
}

func (v Volunteer) Category() Category { return CategoryVolunteer }

func (v Volunteer) MedicalTags() []MedicalQualificationTag {
	return slices.Clone(v.medicalTags)
}

// IsSame compares identity only.
func (v Volunteer) IsSame(other Volunteer) bool {
	return v.Nric() == other.Nric()
}

func (v Volunteer) Equal(other Volunteer) bool {
	return setsEqual(v.medicalTags, other.medicalTags) && v.Person.Equal(other.Person)
}

func (v Volunteer) String() string {
	s := v.Person.String()
	if len(v.medicalTags) > 0 {
		s += "; Medical qualifications: " + joinSet(v.medicalTags)
	}
	return s
}
