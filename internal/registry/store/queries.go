package store

import (
	"slices"

	"friendlylink/internal/registry/models"
)

func (f *FriendlyLink) Elderly(nric models.Nric) (models.Elderly, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	i, ok := f.elderlyIdx[nric]
	if !ok {
		return models.Elderly{}, false
	}
	return f.elderly[i], true
}

func (f *FriendlyLink) Volunteer(nric models.Nric) (models.Volunteer, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	i, ok := f.volunteerIdx[nric]
	if !ok {
		return models.Volunteer{}, false
	}
	return f.volunteers[i], true
}

func (f *FriendlyLink) HasElderly(nric models.Nric) bool {
	_, ok := f.Elderly(nric)
	return ok
}

func (f *FriendlyLink) HasVolunteer(nric models.Nric) bool {
	_, ok := f.Volunteer(nric)
	return ok
}

func (f *FriendlyLink) HasPair(elderlyNric, volunteerNric models.Nric) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.pairIdx[models.PairKey{Elderly: elderlyNric, Volunteer: volunteerNric}]
	return ok
}

// ElderlyList returns the elderly in insertion order. The slice is a copy.
func (f *FriendlyLink) ElderlyList() []models.Elderly {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.elderly)
}

func (f *FriendlyLink) VolunteerList() []models.Volunteer {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.volunteers)
}

func (f *FriendlyLink) PairList() []models.Pair {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.pairs)
}

// PairKeys returns the identity tuple of every pair, in order.
func (f *FriendlyLink) PairKeys() []models.PairKey {
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]models.PairKey, len(f.pairs))
	for i, p := range f.pairs {
		keys[i] = p.Key()
	}
	return keys
}

func (f *FriendlyLink) PairsOfElderly(nric models.Nric) []models.Pair {
	return f.pairsWhere(func(p models.Pair) bool { return p.Elderly().Nric() == nric })
}

func (f *FriendlyLink) PairsOfVolunteer(nric models.Nric) []models.Pair {
	return f.pairsWhere(func(p models.Pair) bool { return p.Volunteer().Nric() == nric })
}

// CheckElderly reports whether rel holds between the elderly and any
// volunteer it is paired with. It has no side effects.
func (f *FriendlyLink) CheckElderly(nric models.Nric, rel func(models.Elderly, models.Volunteer) bool) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	i, ok := f.elderlyIdx[nric]
	if !ok {
		return false
	}
	e := f.elderly[i]
	return slices.ContainsFunc(f.pairs, func(p models.Pair) bool {
		return p.Elderly().Nric() == nric && rel(e, p.Volunteer())
	})
}

// CheckVolunteer reports whether rel holds between any paired elderly and
// the volunteer.
func (f *FriendlyLink) CheckVolunteer(nric models.Nric, rel func(models.Elderly, models.Volunteer) bool) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	i, ok := f.volunteerIdx[nric]
	if !ok {
		return false
	}
	v := f.volunteers[i]
	return slices.ContainsFunc(f.pairs, func(p models.Pair) bool {
		return p.Volunteer().Nric() == nric && rel(p.Elderly(), v)
	})
}

func (f *FriendlyLink) Counts() Counts {
	f.mu.RLock()
	defer f.mu.RUnlock()
	pairedE := make(map[models.Nric]struct{})
	pairedV := make(map[models.Nric]struct{})
	for _, p := range f.pairs {
		pairedE[p.Elderly().Nric()] = struct{}{}
		pairedV[p.Volunteer().Nric()] = struct{}{}
	}
	return Counts{
		Elderly:          len(f.elderly),
		Volunteers:       len(f.volunteers),
		Pairs:            len(f.pairs),
		PairedElderly:    len(pairedE),
		PairedVolunteers: len(pairedV),
	}
}

func (f *FriendlyLink) pairsWhere(match func(models.Pair) bool) []models.Pair {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []models.Pair
	for _, p := range f.pairs {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}
