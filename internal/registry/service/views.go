package service

import (
	"friendlylink/internal/registry/models"
	"friendlylink/internal/registry/store"
)

// FilteredElderlyList returns the elderly matching the active predicate.
func (m *Model) FilteredElderlyList() []models.Elderly { return m.elderly.Items() }

func (m *Model) FilteredVolunteerList() []models.Volunteer { return m.volunteer.Items() }

func (m *Model) FilteredPairList() []models.Pair { return m.pairs.Items() }

// UpdateFilteredElderlyList changes the elderly view only.
func (m *Model) UpdateFilteredElderlyList(pred Predicate[models.Elderly]) {
	m.elderly.SetPredicate(pred)
}

func (m *Model) UpdateFilteredVolunteerList(pred Predicate[models.Volunteer]) {
	m.volunteer.SetPredicate(pred)
}

func (m *Model) UpdateFilteredPairList(pred Predicate[models.Pair]) {
	m.pairs.SetPredicate(pred)
}

// UpdateAllFilteredLists sets all three predicates at once. Nil shows all.
func (m *Model) UpdateAllFilteredLists(e Predicate[models.Elderly], v Predicate[models.Volunteer], p Predicate[models.Pair]) {
	m.elderly.SetPredicate(e)
	m.volunteer.SetPredicate(v)
	m.pairs.SetPredicate(p)
}

// RefreshAllFilteredLists resets every view to show everything.
func (m *Model) RefreshAllFilteredLists() {
	m.elderly.Reset()
	m.volunteer.Reset()
	m.pairs.Reset()
}

func (m *Model) Elderly(nric models.Nric) (models.Elderly, bool)     { return m.registry.Elderly(nric) }
func (m *Model) Volunteer(nric models.Nric) (models.Volunteer, bool) { return m.registry.Volunteer(nric) }
func (m *Model) HasElderly(nric models.Nric) bool                    { return m.registry.HasElderly(nric) }
func (m *Model) HasVolunteer(nric models.Nric) bool                  { return m.registry.HasVolunteer(nric) }

func (m *Model) HasPair(elderly, volunteer models.Nric) bool {
	return m.registry.HasPair(elderly, volunteer)
}

func (m *Model) CheckElderly(nric models.Nric, rel func(models.Elderly, models.Volunteer) bool) bool {
	return m.registry.CheckElderly(nric, rel)
}

func (m *Model) CheckVolunteer(nric models.Nric, rel func(models.Elderly, models.Volunteer) bool) bool {
	return m.registry.CheckVolunteer(nric, rel)
}

func (m *Model) PairsOfElderly(nric models.Nric) []models.Pair {
	return m.registry.PairsOfElderly(nric)
}

func (m *Model) PairsOfVolunteer(nric models.Nric) []models.Pair {
	return m.registry.PairsOfVolunteer(nric)
}

func (m *Model) Counts() store.Counts { return m.registry.Counts() }
