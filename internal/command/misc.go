package command

import (
	"context"
	"strings"

	"friendlylink/internal/registry/store"
)

// Clear empties the registry.
type Clear struct{}

func (Clear) Word() string { return WordClear }

func (Clear) Execute(ctx context.Context, m Model) (Result, error) {
	m.ResetData(ctx, store.New())
	return Result{Feedback: MessageCleared}, nil
}

type Help struct{}

func (Help) Word() string { return WordHelp }

func (Help) Execute(context.Context, Model) (Result, error) {
	return Result{Feedback: strings.Join([]string{
		UsageAddElderly, UsageAddVolunteer, UsageEdit,
		UsageDeleteElderly, UsageDeleteVolunteer,
		UsagePair, UsageUnpair,
		UsageFind, UsageList, UsageStats,
		UsageClear, UsageHelp, UsageExit,
	}, "\n\n")}, nil
}

type Exit struct{}

func (Exit) Word() string { return WordExit }

func (Exit) Execute(context.Context, Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}
