package command

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"friendlylink/internal/registry/models"
	s "friendlylink/pkg/platform/strings"
)

// FindCriteria is a conjunction of optional filters. Zero fields match all.
type FindCriteria struct {
	NameKeywords []string
	Nric         models.Nric
	Region       models.Region
	Tags         []models.Tag
}

// IsEmpty reports whether no filter is set.
func (f FindCriteria) IsEmpty() bool {
	return len(f.NameKeywords) == 0 && f.Nric.IsZero() && f.Region.IsZero() && len(f.Tags) == 0
}

// Matches reports whether the member satisfies every set filter. Name
// keywords match whole words, ignoring case; any keyword suffices.
func (f FindCriteria) Matches(m models.Member) bool {
	if len(f.NameKeywords) > 0 && !slices.ContainsFunc(f.NameKeywords, func(k string) bool {
		return s.ContainsWordIgnoreCase(m.Name().String(), k)
	}) {
		return false
	}
	if !f.Nric.IsZero() && m.Nric() != f.Nric {
		return false
	}
	if !f.Region.IsZero() && m.Region() != f.Region {
		return false
	}
	for _, want := range f.Tags {
		if !m.HasTag(want) {
			return false
		}
	}
	return true
}

// Find narrows all three views. Pairs are kept when either side matched.
type Find struct {
	Criteria FindCriteria
}

func (c Find) Word() string { return WordFind }

func (c Find) Execute(_ context.Context, m Model) (Result, error) {
	match := c.Criteria.Matches
	m.UpdateAllFilteredLists(
		func(e models.Elderly) bool { return match(e) },
		func(v models.Volunteer) bool { return match(v) },
		func(p models.Pair) bool { return match(p.Elderly()) || match(p.Volunteer()) },
	)
	return Result{Feedback: render(m, true, true, true)}, nil
}

// ListKind selects what List shows.
type ListKind string

const (
	ListAll        ListKind = ""
	ListElderly    ListKind = "elderly"
	ListVolunteers ListKind = "volunteers"
	ListPairs      ListKind = "pairs"
	ListPaired     ListKind = "paired"
	ListUnpaired   ListKind = "unpaired"
)

var ListKinds = []ListKind{ListElderly, ListVolunteers, ListPairs, ListPaired, ListUnpaired}

type List struct {
	Kind ListKind
}

func (c List) Word() string { return WordList }

func (c List) Execute(_ context.Context, m Model) (Result, error) {
	anyVolunteer := func(models.Elderly, models.Volunteer) bool { return true }
	switch c.Kind {
	case ListPaired:
		m.UpdateAllFilteredLists(
			func(e models.Elderly) bool { return m.CheckElderly(e.Nric(), anyVolunteer) },
			func(v models.Volunteer) bool { return m.CheckVolunteer(v.Nric(), anyVolunteer) },
			nil,
		)
	case ListUnpaired:
		m.UpdateAllFilteredLists(
			func(e models.Elderly) bool { return !m.CheckElderly(e.Nric(), anyVolunteer) },
			func(v models.Volunteer) bool { return !m.CheckVolunteer(v.Nric(), anyVolunteer) },
			func(models.Pair) bool { return false },
		)
	default:
		m.RefreshAllFilteredLists()
	}

	showAll := c.Kind == ListAll || c.Kind == ListPaired || c.Kind == ListUnpaired
	return Result{Feedback: render(m,
		showAll || c.Kind == ListElderly,
		showAll || c.Kind == ListVolunteers,
		showAll || c.Kind == ListPairs,
	)}, nil
}

// Stats reports registry totals. It does not touch the views.
type Stats struct{}

func (Stats) Word() string { return WordStats }

func (Stats) Execute(_ context.Context, m Model) (Result, error) {
	c := m.Counts()
	return Result{Feedback: fmt.Sprintf(
		"Elderly: %d (paired %d, unpaired %d)\nVolunteers: %d (paired %d, unpaired %d)\nPairs: %d",
		c.Elderly, c.PairedElderly, c.Elderly-c.PairedElderly,
		c.Volunteers, c.PairedVolunteers, c.Volunteers-c.PairedVolunteers,
		c.Pairs,
	)}, nil
}

func render(m Model, elderly, volunteers, pairs bool) string {
	e, v, p := m.FilteredElderlyList(), m.FilteredVolunteerList(), m.FilteredPairList()

	var b strings.Builder
	fmt.Fprintf(&b, MessageListed, len(e), len(v), len(p))
	if elderly {
		writeSection(&b, "Elderly", e)
	}
	if volunteers {
		writeSection(&b, "Volunteers", v)
	}
	if pairs {
		writeSection(&b, "Pairs", p)
	}
	return b.String()
}

func writeSection[T fmt.Stringer](b *strings.Builder, title string, items []T) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:", title)
	for i, item := range items {
		fmt.Fprintf(b, "\n%d. %s", i+1, item)
	}
}
