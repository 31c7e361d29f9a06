// Package service exposes the registry to the rest of the application: it
// wraps the aggregate, keeps the filtered views in step with every change,
// and persists through a Storage collaborator.
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"friendlylink/internal/registry/events"
	"friendlylink/internal/registry/models"
	"friendlylink/internal/registry/store"
	dErrors "friendlylink/pkg/domain-errors"
	"friendlylink/pkg/platform/sentinel"
)

// Storage loads and saves the whole registry.
type Storage interface {
	Read(ctx context.Context) (*store.FriendlyLink, error)
	Write(ctx context.Context, registry *store.FriendlyLink) error
}

// ChangePublisher ships committed changes to downstream consumers.
type ChangePublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// LoadOutcome records how the initial read from storage went.
type LoadOutcome int

const (
	LoadedFromStorage LoadOutcome = iota
	LoadedNoData
	LoadedCorruptData
	LoadedUnreadable
)

// Model is the façade over the registry aggregate.
type Model struct {
	registry  *store.FriendlyLink
	storage   Storage
	logger    *slog.Logger
	cfg       modelConfig
	outcome   LoadOutcome
	elderly   *FilteredList[models.Elderly]
	volunteer *FilteredList[models.Volunteer]
	pairs     *FilteredList[models.Pair]

	mu    sync.Mutex
	dirty bool
}

// New reads the registry from storage. Storage failures are not fatal: the
// model starts empty and the failure is logged.
func New(ctx context.Context, storage Storage, opts ...Option) *Model {
	cfg := modelConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.publisher == nil {
		cfg.publisher = events.NopPublisher{}
	}

	m := &Model{storage: storage, logger: cfg.logger, cfg: cfg}
	m.registry, m.outcome = m.load(ctx)
	m.elderly = newFilteredList(m.registry.ElderlyList)
	m.volunteer = newFilteredList(m.registry.VolunteerList)
	m.pairs = newFilteredList(m.registry.PairList)
	m.recordCounts()
	return m
}

func (m *Model) load(ctx context.Context) (*store.FriendlyLink, LoadOutcome) {
	if m.storage == nil {
		return store.New(), LoadedNoData
	}
	registry, err := m.storage.Read(ctx)
	switch {
	case err == nil:
		counts := registry.Counts()
		m.logger.Info("registry loaded",
			"elderly", counts.Elderly,
			"volunteers", counts.Volunteers,
			"pairs", counts.Pairs,
		)
		return registry, LoadedFromStorage
	case errors.Is(err, sentinel.ErrNoData):
		m.logger.Info("no saved registry found, starting empty")
		return store.New(), LoadedNoData
	case errors.Is(err, sentinel.ErrDataConversion):
		m.cfg.metrics.IncrementStorageFailure("read")
		m.logger.Warn("saved registry is not in the correct format, starting empty", "error", err)
		return store.New(), LoadedCorruptData
	default:
		m.cfg.metrics.IncrementStorageFailure("read")
		m.logger.Warn("problem while reading the saved registry, starting empty", "error", err)
		return store.New(), LoadedUnreadable
	}
}

// LoadOutcome reports how the registry was obtained at startup.
func (m *Model) LoadOutcome() LoadOutcome { return m.outcome }

func (m *Model) AddElderly(ctx context.Context, e models.Elderly) error {
	if err := m.registry.AddElderly(e); err != nil {
		return err
	}
	m.committed(ctx, events.New(events.ElderlyAdded, e.Nric(), ""))
	return nil
}

func (m *Model) AddVolunteer(ctx context.Context, v models.Volunteer) error {
	if err := m.registry.AddVolunteer(v); err != nil {
		return err
	}
	m.committed(ctx, events.New(events.VolunteerAdded, "", v.Nric()))
	return nil
}

// DeleteElderly removes the elderly and, with it, all of its pairs.
func (m *Model) DeleteElderly(ctx context.Context, nric models.Nric) (models.Elderly, error) {
	removed, cascaded, err := m.registry.RemoveElderly(nric)
	if err != nil {
		return models.Elderly{}, err
	}
	m.cfg.metrics.AddCascadedPairs(len(cascaded))
	event := events.New(events.ElderlyDeleted, nric, "")
	event.CascadedPairs = len(cascaded)
	m.committed(ctx, event)
	return removed, nil
}

// DeleteVolunteer removes the volunteer and, with it, all of its pairs.
func (m *Model) DeleteVolunteer(ctx context.Context, nric models.Nric) (models.Volunteer, error) {
	removed, cascaded, err := m.registry.RemoveVolunteer(nric)
	if err != nil {
		return models.Volunteer{}, err
	}
	m.cfg.metrics.AddCascadedPairs(len(cascaded))
	event := events.New(events.VolunteerDeleted, "", nric)
	event.CascadedPairs = len(cascaded)
	m.committed(ctx, event)
	return removed, nil
}

func (m *Model) SetElderly(ctx context.Context, target models.Nric, edited models.Elderly) error {
	if err := m.registry.SetElderly(target, edited); err != nil {
		return err
	}
	m.committed(ctx, events.New(events.ElderlyEdited, edited.Nric(), ""))
	return nil
}

func (m *Model) SetVolunteer(ctx context.Context, target models.Nric, edited models.Volunteer) error {
	if err := m.registry.SetVolunteer(target, edited); err != nil {
		return err
	}
	m.committed(ctx, events.New(events.VolunteerEdited, "", edited.Nric()))
	return nil
}

func (m *Model) AddPair(ctx context.Context, elderly, volunteer models.Nric) (models.Pair, error) {
	p, err := m.registry.AddPair(elderly, volunteer)
	if err != nil {
		return models.Pair{}, err
	}
	m.committed(ctx, events.New(events.PairAdded, elderly, volunteer))
	return p, nil
}

func (m *Model) DeletePair(ctx context.Context, elderly, volunteer models.Nric) (models.Pair, error) {
	p, err := m.registry.RemovePair(elderly, volunteer)
	if err != nil {
		return models.Pair{}, err
	}
	m.committed(ctx, events.New(events.PairDeleted, elderly, volunteer))
	return p, nil
}

func (m *Model) SetPair(ctx context.Context, target, edited models.PairKey) (models.Pair, error) {
	p, err := m.registry.SetPair(target, edited)
	if err != nil {
		return models.Pair{}, err
	}
	m.committed(ctx, events.New(events.PairEdited, edited.Elderly, edited.Volunteer))
	return p, nil
}

// ResetData replaces the whole registry with a copy of data.
func (m *Model) ResetData(ctx context.Context, data *store.FriendlyLink) {
	m.registry.ResetData(data)
	m.committed(ctx, events.New(events.RegistryCleared, "", ""))
}

// Save writes the registry through storage if anything changed since the
// last successful save. A failed write leaves the model dirty.
func (m *Model) Save(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirty || m.storage == nil {
		return nil
	}
	if err := m.storage.Write(ctx, m.registry.Clone()); err != nil {
		m.cfg.metrics.IncrementStorageFailure("write")
		return dErrors.Wrap(err, dErrors.CodeInternal, "Could not save data to storage")
	}
	m.dirty = false
	return nil
}

// Dirty reports whether there are changes not yet saved.
func (m *Model) Dirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirty
}

// committed runs after every successful mutation.
func (m *Model) committed(ctx context.Context, event events.Event) {
	m.RefreshAllFilteredLists()
	m.mu.Lock()
	m.dirty = true
	m.mu.Unlock()
	m.recordCounts()
	if err := m.cfg.publisher.Publish(ctx, event); err != nil {
		m.cfg.metrics.IncrementPublishFailure()
		m.logger.Warn("failed to publish registry event",
			"type", event.Type,
			"event_id", event.ID,
			"error", err,
		)
	}
}

func (m *Model) recordCounts() {
	c := m.registry.Counts()
	m.cfg.metrics.SetRecords(c.Elderly, c.Volunteers, c.Pairs)
}
