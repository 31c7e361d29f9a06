// Package command holds the executable commands produced by the parser.
// Commands run existence checks against the model; format validation has
// already happened by the time one is constructed.
package command

import (
	"context"

	"friendlylink/internal/registry/models"
	"friendlylink/internal/registry/service"
	"friendlylink/internal/registry/store"
)

// Command words.
const (
	WordAddElderly      = "add_elderly"
	WordAddVolunteer    = "add_volunteer"
	WordEdit            = "edit"
	WordDeleteElderly   = "delete_elderly"
	WordDeleteVolunteer = "delete_volunteer"
	WordPair            = "pair"
	WordUnpair          = "unpair"
	WordFind            = "find"
	WordList            = "list"
	WordStats           = "stats"
	WordClear           = "clear"
	WordHelp            = "help"
	WordExit            = "exit"
)

// Result is what the user sees after a command ran.
type Result struct {
	Feedback string
	Exit     bool
}

// Command is one parsed, executable user request.
type Command interface {
	Word() string
	Execute(ctx context.Context, m Model) (Result, error)
}

// Model is the registry surface commands run against. *service.Model
// satisfies it.
type Model interface {
	AddElderly(ctx context.Context, e models.Elderly) error
	AddVolunteer(ctx context.Context, v models.Volunteer) error
	DeleteElderly(ctx context.Context, nric models.Nric) (models.Elderly, error)
	DeleteVolunteer(ctx context.Context, nric models.Nric) (models.Volunteer, error)
	SetElderly(ctx context.Context, target models.Nric, edited models.Elderly) error
	SetVolunteer(ctx context.Context, target models.Nric, edited models.Volunteer) error
	AddPair(ctx context.Context, elderly, volunteer models.Nric) (models.Pair, error)
	DeletePair(ctx context.Context, elderly, volunteer models.Nric) (models.Pair, error)
	ResetData(ctx context.Context, data *store.FriendlyLink)

	Elderly(nric models.Nric) (models.Elderly, bool)
	Volunteer(nric models.Nric) (models.Volunteer, bool)
	HasElderly(nric models.Nric) bool
	HasVolunteer(nric models.Nric) bool
	CheckElderly(nric models.Nric, rel func(models.Elderly, models.Volunteer) bool) bool
	CheckVolunteer(nric models.Nric, rel func(models.Elderly, models.Volunteer) bool) bool
	PairsOfElderly(nric models.Nric) []models.Pair
	PairsOfVolunteer(nric models.Nric) []models.Pair
	Counts() store.Counts

	FilteredElderlyList() []models.Elderly
	FilteredVolunteerList() []models.Volunteer
	FilteredPairList() []models.Pair
	UpdateAllFilteredLists(e service.Predicate[models.Elderly], v service.Predicate[models.Volunteer], p service.Predicate[models.Pair])
	RefreshAllFilteredLists()
}

var _ Model = (*service.Model)(nil)
