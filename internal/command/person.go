package command

import (
	"context"
	"fmt"
	"strings"

	"friendlylink/internal/registry/models"
	dErrors "friendlylink/pkg/domain-errors"
)

// AddElderly registers a new elderly. An NRIC already used by a volunteer
// is rejected.
type AddElderly struct {
	Elderly models.Elderly
}

func (c AddElderly) Word() string { return WordAddElderly }

func (c AddElderly) Execute(ctx context.Context, m Model) (Result, error) {
	if m.HasVolunteer(c.Elderly.Nric()) {
		return Result{}, dErrors.New(dErrors.CodeConflict, fmt.Sprintf(MessageNricTakenByVolunteer, c.Elderly.Nric()))
	}
	if err := m.AddElderly(ctx, c.Elderly); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageAddElderlySuccess, c.Elderly)}, nil
}

// AddVolunteer registers a new volunteer. An NRIC already used by an elderly
// is rejected.
type AddVolunteer struct {
	Volunteer models.Volunteer
}

func (c AddVolunteer) Word() string { return WordAddVolunteer }

func (c AddVolunteer) Execute(ctx context.Context, m Model) (Result, error) {
	if m.HasElderly(c.Volunteer.Nric()) {
		return Result{}, dErrors.New(dErrors.CodeConflict, fmt.Sprintf(MessageNricTakenByElderly, c.Volunteer.Nric()))
	}
	if err := m.AddVolunteer(ctx, c.Volunteer); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageAddVolunteerSuccess, c.Volunteer)}, nil
}

// Edit patches whichever record owns Nric.
type Edit struct {
	Nric       models.Nric
	Descriptor *EditDescriptor
}

func (c Edit) Word() string { return WordEdit }

func (c Edit) Execute(ctx context.Context, m Model) (Result, error) {
	if e, ok := m.Elderly(c.Nric); ok {
		edited, err := c.Descriptor.ApplyToElderly(e)
		if err != nil {
			return Result{}, err
		}
		if edited.Nric() != c.Nric && m.HasVolunteer(edited.Nric()) {
			return Result{}, dErrors.New(dErrors.CodeConflict, fmt.Sprintf(MessageNricTakenByVolunteer, edited.Nric()))
		}
		if err := m.SetElderly(ctx, c.Nric, edited); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf(MessageEditSuccess, edited)}, nil
	}

	if v, ok := m.Volunteer(c.Nric); ok {
		edited, err := c.Descriptor.ApplyToVolunteer(v)
		if err != nil {
			return Result{}, err
		}
		if edited.Nric() != c.Nric && m.HasElderly(edited.Nric()) {
			return Result{}, dErrors.New(dErrors.CodeConflict, fmt.Sprintf(MessageNricTakenByElderly, edited.Nric()))
		}
		if err := m.SetVolunteer(ctx, c.Nric, edited); err != nil {
			return Result{}, err
		}
		return Result{Feedback: fmt.Sprintf(MessageEditSuccess, edited)}, nil
	}

	return Result{}, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf(MessageNoSuchPerson, c.Nric))
}

// DeleteElderly removes an elderly together with their pairs.
type DeleteElderly struct {
	Nric models.Nric
}

func (c DeleteElderly) Word() string { return WordDeleteElderly }

func (c DeleteElderly) Execute(ctx context.Context, m Model) (Result, error) {
	pairs := m.PairsOfElderly(c.Nric)
	removed, err := m.DeleteElderly(ctx, c.Nric)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageDeleteElderlySuccess, removed) + cascaded(pairs)}, nil
}

// DeleteVolunteer removes a volunteer together with their pairs.
type DeleteVolunteer struct {
	Nric models.Nric
}

func (c DeleteVolunteer) Word() string { return WordDeleteVolunteer }

func (c DeleteVolunteer) Execute(ctx context.Context, m Model) (Result, error) {
	pairs := m.PairsOfVolunteer(c.Nric)
	removed, err := m.DeleteVolunteer(ctx, c.Nric)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageDeleteVolunteerSuccess, removed) + cascaded(pairs)}, nil
}

// cascaded lists the pairs a delete took with it.
func cascaded(pairs []models.Pair) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, MessageCascadedPairs, len(pairs))
	for _, p := range pairs {
		b.WriteString("\n" + p.String())
	}
	return b.String()
}
