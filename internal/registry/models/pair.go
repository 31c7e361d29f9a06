package models

import "fmt"

// PairKey identifies a pair by the NRICs on both sides.
type PairKey struct {
	Elderly   Nric
	Volunteer Nric
}

func (k PairKey) String() string {
	return fmt.Sprintf("%s, %s", k.Elderly, k.Volunteer)
}

// Pair links one elderly to one volunteer. It carries snapshots of both
// records as they were when the pair was last written by the registry.
type Pair struct {
	elderly   Elderly
	volunteer Volunteer
}

func NewPair(e Elderly, v Volunteer) Pair {
	return Pair{elderly: e, volunteer: v}
}

func (p Pair) Elderly() Elderly     { return p.elderly }
func (p Pair) Volunteer() Volunteer { return p.volunteer }

func (p Pair) Key() PairKey {
	return PairKey{Elderly: p.elderly.Nric(), Volunteer: p.volunteer.Nric()}
}

// Equal compares the NRIC tuple only. Two pairs holding different snapshots
// of the same people are the same pair.
func (p Pair) Equal(other Pair) bool { return p.Key() == other.Key() }

func (p Pair) String() string {
	return fmt.Sprintf("Elderly: %s (%s); Volunteer: %s (%s)",
		p.elderly.Name(), p.elderly.Nric(), p.volunteer.Name(), p.volunteer.Nric())
}
