// Package events describes registry changes and ships them to Kafka.
// Identity numbers never leave the process in clear; events carry hashes.
package events

import (
	"time"

	"github.com/google/uuid"

	"friendlylink/internal/platform/privacy"
	"friendlylink/internal/registry/models"
)

type Type string

const (
	ElderlyAdded     Type = "elderly.added"
	ElderlyEdited    Type = "elderly.edited"
	ElderlyDeleted   Type = "elderly.deleted"
	VolunteerAdded   Type = "volunteer.added"
	VolunteerEdited  Type = "volunteer.edited"
	VolunteerDeleted Type = "volunteer.deleted"
	PairAdded        Type = "pair.added"
	PairEdited       Type = "pair.edited"
	PairDeleted      Type = "pair.deleted"
	RegistryCleared  Type = "registry.cleared"
)

// Event is one committed change to the registry.
type Event struct {
	ID            uuid.UUID `json:"id"`
	Type          Type      `json:"type"`
	ElderlyRef    string    `json:"elderly_ref,omitempty"`
	VolunteerRef  string    `json:"volunteer_ref,omitempty"`
	CascadedPairs int       `json:"cascaded_pairs,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// New builds an event. Either NRIC may be empty.
func New(t Type, elderly, volunteer models.Nric) Event {
	return Event{
		ID:           uuid.New(),
		Type:         t,
		ElderlyRef:   privacy.HashNric(elderly.String()),
		VolunteerRef: privacy.HashNric(volunteer.String()),
		OccurredAt:   time.Now().UTC(),
	}
}

// Key is the partitioning key: the elderly side when present so that all
// changes touching one elderly stay ordered.
func (e Event) Key() string {
	if e.ElderlyRef != "" {
		return e.ElderlyRef
	}
	return e.VolunteerRef
}
