package command

import (
	"context"
	"fmt"

	"friendlylink/internal/registry/models"
)

// Pair links an existing elderly and volunteer.
type Pair struct {
	Elderly   models.Nric
	Volunteer models.Nric
}

func (c Pair) Word() string { return WordPair }

func (c Pair) Execute(ctx context.Context, m Model) (Result, error) {
	p, err := m.AddPair(ctx, c.Elderly, c.Volunteer)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessagePairSuccess, p)}, nil
}

// DeletePair removes an existing pair. A missing pair is an error.
type DeletePair struct {
	Elderly   models.Nric
	Volunteer models.Nric
}

func (c DeletePair) Word() string { return WordUnpair }

func (c DeletePair) Execute(ctx context.Context, m Model) (Result, error) {
	p, err := m.DeletePair(ctx, c.Elderly, c.Volunteer)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageUnpairSuccess, p)}, nil
}
