// Package store holds the registry aggregate: elderly, volunteers and the
// pairs between them, with the invariants that tie the three together.
package store

import (
	"slices"
	"sync"

	"friendlylink/internal/registry/models"
	dErrors "friendlylink/pkg/domain-errors"
)

// Errors returned by the aggregate. They match with errors.Is by code, so
// compare messages or use these values directly when the entity matters.
var (
	ErrDuplicateElderly   = dErrors.New(dErrors.CodeConflict, "This elderly already exists in FriendlyLink")
	ErrDuplicateVolunteer = dErrors.New(dErrors.CodeConflict, "This volunteer already exists in FriendlyLink")
	ErrDuplicatePair      = dErrors.New(dErrors.CodeConflict, "This pair already exists in FriendlyLink")
	ErrElderlyNotFound    = dErrors.New(dErrors.CodeNotFound, "The elderly is not registered in FriendlyLink")
	ErrVolunteerNotFound  = dErrors.New(dErrors.CodeNotFound, "The volunteer is not registered in FriendlyLink")
	ErrPairNotFound       = dErrors.New(dErrors.CodeNotFound, "This pair does not exist in FriendlyLink")
)

// FriendlyLink owns the three collections. Writers take the lock exclusively,
// so readers never see a pair whose elderly or volunteer is gone.
// Insertion order is preserved; replacements keep their position.
type FriendlyLink struct {
	mu sync.RWMutex

	elderly      []models.Elderly
	elderlyIdx   map[models.Nric]int
	volunteers   []models.Volunteer
	volunteerIdx map[models.Nric]int
	pairs        []models.Pair
	pairIdx      map[models.PairKey]int
}

// Counts summarises the registry.
type Counts struct {
	Elderly          int
	Volunteers       int
	Pairs            int
	PairedElderly    int
	PairedVolunteers int
}

func New() *FriendlyLink {
	return &FriendlyLink{
		elderlyIdx:   make(map[models.Nric]int),
		volunteerIdx: make(map[models.Nric]int),
		pairIdx:      make(map[models.PairKey]int),
	}
}

// NewFromLists hydrates an aggregate, enforcing the same rules as the
// individual add operations.
func NewFromLists(elderly []models.Elderly, volunteers []models.Volunteer, pairs []models.PairKey) (*FriendlyLink, error) {
	fl := New()
	for _, e := range elderly {
		if err := fl.AddElderly(e); err != nil {
			return nil, err
		}
	}
	for _, v := range volunteers {
		if err := fl.AddVolunteer(v); err != nil {
			return nil, err
		}
	}
	for _, k := range pairs {
		if _, err := fl.AddPair(k.Elderly, k.Volunteer); err != nil {
			return nil, err
		}
	}
	return fl, nil
}

func (f *FriendlyLink) AddElderly(e models.Elderly) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.elderlyIdx[e.Nric()]; ok {
		return ErrDuplicateElderly
	}
	f.elderlyIdx[e.Nric()] = len(f.elderly)
	f.elderly = append(f.elderly, e)
	return nil
}

func (f *FriendlyLink) AddVolunteer(v models.Volunteer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.volunteerIdx[v.Nric()]; ok {
		return ErrDuplicateVolunteer
	}
	f.volunteerIdx[v.Nric()] = len(f.volunteers)
	f.volunteers = append(f.volunteers, v)
	return nil
}

// RemoveElderly deletes the elderly and every pair referencing it.
// The cascaded pairs are returned in their original order.
func (f *FriendlyLink) RemoveElderly(nric models.Nric) (models.Elderly, []models.Pair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.elderlyIdx[nric]
	if !ok {
		return models.Elderly{}, nil, ErrElderlyNotFound
	}
	removed := f.elderly[i]
	f.elderly = slices.Delete(f.elderly, i, i+1)
	f.elderlyIdx = indexBy(f.elderly, models.Elderly.Nric)
	cascaded := f.removePairsWhere(func(p models.Pair) bool { return p.Elderly().Nric() == nric })
	return removed, cascaded, nil
}

// RemoveVolunteer deletes the volunteer and every pair referencing it.
func (f *FriendlyLink) RemoveVolunteer(nric models.Nric) (models.Volunteer, []models.Pair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.volunteerIdx[nric]
	if !ok {
		return models.Volunteer{}, nil, ErrVolunteerNotFound
	}
	removed := f.volunteers[i]
	f.volunteers = slices.Delete(f.volunteers, i, i+1)
	f.volunteerIdx = indexBy(f.volunteers, models.Volunteer.Nric)
	cascaded := f.removePairsWhere(func(p models.Pair) bool { return p.Volunteer().Nric() == nric })
	return removed, cascaded, nil
}

// AddPair links a registered elderly and volunteer.
func (f *FriendlyLink) AddPair(elderlyNric, volunteerNric models.Nric) (models.Pair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ei, ok := f.elderlyIdx[elderlyNric]
	if !ok {
		return models.Pair{}, ErrElderlyNotFound
	}
	vi, ok := f.volunteerIdx[volunteerNric]
	if !ok {
		return models.Pair{}, ErrVolunteerNotFound
	}
	key := models.PairKey{Elderly: elderlyNric, Volunteer: volunteerNric}
	if _, ok := f.pairIdx[key]; ok {
		return models.Pair{}, ErrDuplicatePair
	}
	p := models.NewPair(f.elderly[ei], f.volunteers[vi])
	f.pairIdx[key] = len(f.pairs)
	f.pairs = append(f.pairs, p)
	return p, nil
}

// RemovePair unlinks a pair. Removing a pair that does not exist fails with
// ErrPairNotFound and changes nothing.
func (f *FriendlyLink) RemovePair(elderlyNric, volunteerNric models.Nric) (models.Pair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := models.PairKey{Elderly: elderlyNric, Volunteer: volunteerNric}
	i, ok := f.pairIdx[key]
	if !ok {
		return models.Pair{}, ErrPairNotFound
	}
	removed := f.pairs[i]
	f.pairs = slices.Delete(f.pairs, i, i+1)
	f.pairIdx = indexBy(f.pairs, models.Pair.Key)
	return removed, nil
}

// SetElderly replaces the elderly identified by target with edited, keeping
// its position. When the NRIC changes, the new one must be free, and pairs
// are rewritten to reference the edited record.
func (f *FriendlyLink) SetElderly(target models.Nric, edited models.Elderly) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.elderlyIdx[target]
	if !ok {
		return ErrElderlyNotFound
	}
	if edited.Nric() != target {
		if _, taken := f.elderlyIdx[edited.Nric()]; taken {
			return ErrDuplicateElderly
		}
		delete(f.elderlyIdx, target)
		f.elderlyIdx[edited.Nric()] = i
	}
	f.elderly[i] = edited
	f.rewritePairs(func(p models.Pair) (models.Pair, bool) {
		if p.Elderly().Nric() != target {
			return p, false
		}
		return models.NewPair(edited, p.Volunteer()), true
	})
	return nil
}

// SetVolunteer is SetElderly for volunteers.
func (f *FriendlyLink) SetVolunteer(target models.Nric, edited models.Volunteer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.volunteerIdx[target]
	if !ok {
		return ErrVolunteerNotFound
	}
	if edited.Nric() != target {
		if _, taken := f.volunteerIdx[edited.Nric()]; taken {
			return ErrDuplicateVolunteer
		}
		delete(f.volunteerIdx, target)
		f.volunteerIdx[edited.Nric()] = i
	}
	f.volunteers[i] = edited
	f.rewritePairs(func(p models.Pair) (models.Pair, bool) {
		if p.Volunteer().Nric() != target {
			return p, false
		}
		return models.NewPair(p.Elderly(), edited), true
	})
	return nil
}

// SetPair re-points the pair at target to the sides named by edited. Both
// sides must be registered; the stored pair uses the registered records.
func (f *FriendlyLink) SetPair(target models.PairKey, edited models.PairKey) (models.Pair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.pairIdx[target]
	if !ok {
		return models.Pair{}, ErrPairNotFound
	}
	ei, ok := f.elderlyIdx[edited.Elderly]
	if !ok {
		return models.Pair{}, ErrElderlyNotFound
	}
	vi, ok := f.volunteerIdx[edited.Volunteer]
	if !ok {
		return models.Pair{}, ErrVolunteerNotFound
	}
	if edited != target {
		if _, taken := f.pairIdx[edited]; taken {
			return models.Pair{}, ErrDuplicatePair
		}
		delete(f.pairIdx, target)
		f.pairIdx[edited] = i
	}
	p := models.NewPair(f.elderly[ei], f.volunteers[vi])
	f.pairs[i] = p
	return p, nil
}

// ResetData replaces the contents with a copy of other.
func (f *FriendlyLink) ResetData(other *FriendlyLink) {
	elderly, volunteers, pairs := other.ElderlyList(), other.VolunteerList(), other.PairList()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.elderly, f.volunteers, f.pairs = elderly, volunteers, pairs
	f.elderlyIdx = indexBy(f.elderly, models.Elderly.Nric)
	f.volunteerIdx = indexBy(f.volunteers, models.Volunteer.Nric)
	f.pairIdx = indexBy(f.pairs, models.Pair.Key)
}

// Clone returns an independent copy.
func (f *FriendlyLink) Clone() *FriendlyLink {
	c := New()
	c.ResetData(f)
	return c
}

// removePairsWhere must be called with the write lock held.
func (f *FriendlyLink) removePairsWhere(match func(models.Pair) bool) []models.Pair {
	var removed []models.Pair
	kept := f.pairs[:0]
	for _, p := range f.pairs {
		if match(p) {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	clear(f.pairs[len(kept):])
	f.pairs = kept
	if len(removed) > 0 {
		f.pairIdx = indexBy(f.pairs, models.Pair.Key)
	}
	return removed
}

// rewritePairs must be called with the write lock held.
func (f *FriendlyLink) rewritePairs(rewrite func(models.Pair) (models.Pair, bool)) {
	changed := false
	for i, p := range f.pairs {
		if np, ok := rewrite(p); ok {
			f.pairs[i] = np
			changed = true
		}
	}
	if changed {
		f.pairIdx = indexBy(f.pairs, models.Pair.Key)
	}
}

func indexBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	idx := make(map[K]int, len(items))
	for i, item := range items {
		idx[key(item)] = i
	}
	return idx
}
