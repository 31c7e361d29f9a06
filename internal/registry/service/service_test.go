package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Storage,ChangePublisher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"friendlylink/internal/registry/events"
	registrymetrics "friendlylink/internal/registry/metrics"
	"friendlylink/internal/registry/models"
	"friendlylink/internal/registry/service/mocks"
	"friendlylink/internal/registry/store"
	dErrors "friendlylink/pkg/domain-errors"
	"friendlylink/pkg/platform/sentinel"
	"friendlylink/pkg/testutil"
)

type ModelSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	mockStorage   *mocks.MockStorage
	mockPublisher *mocks.MockChangePublisher
	metrics       *registrymetrics.Metrics
	logger        *slog.Logger

	alice models.Elderly
	carol models.Elderly
	ben   models.Volunteer
	dave  models.Volunteer
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

func (s *ModelSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockStorage = mocks.NewMockStorage(s.ctrl)
	s.mockPublisher = mocks.NewMockChangePublisher(s.ctrl)
	s.metrics = registrymetrics.New(prometheus.NewRegistry())
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	s.alice = testutil.NewElderlyBuilder().Build()
	s.carol = testutil.NewElderlyBuilder().WithNric(testutil.TestNrics.Elderly2).WithName("Carol Ng").Build()
	s.ben = testutil.NewVolunteerBuilder().Build()
	s.dave = testutil.NewVolunteerBuilder().WithNric(testutil.TestNrics.Volunteer2).WithName("Dave Ong").Build()
}

func (s *ModelSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newModel builds a model over a registry holding alice, carol, ben and dave.
func (s *ModelSuite) newModel() *Model {
	registry, err := store.NewFromLists(
		[]models.Elderly{s.alice, s.carol},
		[]models.Volunteer{s.ben, s.dave},
		nil,
	)
	s.Require().NoError(err)
	s.mockStorage.EXPECT().Read(gomock.Any()).Return(registry, nil)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return New(s.ctx, s.mockStorage,
		WithLogger(s.logger),
		WithMetrics(s.metrics),
		WithChangePublisher(s.mockPublisher),
	)
}

func (s *ModelSuite) TestNewFallsBackToEmpty() {
	cases := []struct {
		name    string
		err     error
		outcome LoadOutcome
	}{
		{"no data", sentinel.ErrNoData, LoadedNoData},
		{"conversion error", errors.Join(sentinel.ErrDataConversion, errors.New("bad nric")), LoadedCorruptData},
		{"io error", errors.New("permission denied"), LoadedUnreadable},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockStorage.EXPECT().Read(gomock.Any()).Return(nil, tc.err)
			m := New(s.ctx, s.mockStorage, WithLogger(s.logger))
			s.Equal(tc.outcome, m.LoadOutcome())
			s.Empty(m.FilteredElderlyList())
			s.Empty(m.FilteredVolunteerList())
			s.Empty(m.FilteredPairList())
			s.False(m.Dirty())
		})
	}
}

func (s *ModelSuite) TestNewLoadsFromStorage() {
	m := s.newModel()
	s.Equal(LoadedFromStorage, m.LoadOutcome())
	s.Len(m.FilteredElderlyList(), 2)
	s.Equal(2.0, promtestutil.ToFloat64(s.metrics.Records.WithLabelValues("volunteer")))
}

func (s *ModelSuite) TestMutationsRefreshAllViews() {
	m := s.newModel()
	m.UpdateFilteredElderlyList(func(e models.Elderly) bool { return e.Name() == "Carol Ng" })
	m.UpdateFilteredVolunteerList(func(models.Volunteer) bool { return false })
	s.Len(m.FilteredElderlyList(), 1)
	s.Empty(m.FilteredVolunteerList())

	_, err := m.AddPair(s.ctx, s.alice.Nric(), s.ben.Nric())
	s.Require().NoError(err)

	s.Len(m.FilteredElderlyList(), 2)
	s.Len(m.FilteredVolunteerList(), 2)
	s.Len(m.FilteredPairList(), 1)
	s.True(m.Dirty())
}

func (s *ModelSuite) TestUpdateFilteredListTouchesOneView() {
	m := s.newModel()
	_, err := m.AddPair(s.ctx, s.alice.Nric(), s.ben.Nric())
	s.Require().NoError(err)

	m.UpdateFilteredPairList(func(models.Pair) bool { return false })
	s.Empty(m.FilteredPairList())
	s.Len(m.FilteredElderlyList(), 2)
	s.Len(m.FilteredVolunteerList(), 2)

	m.RefreshAllFilteredLists()
	s.Len(m.FilteredPairList(), 1)

	m.UpdateAllFilteredLists(nil, func(v models.Volunteer) bool { return v.IsSame(s.dave) }, nil)
	s.Len(m.FilteredElderlyList(), 2)
	s.Len(m.FilteredVolunteerList(), 1)
}

func (s *ModelSuite) TestViewsAreReadOnlyCopies() {
	m := s.newModel()
	view := m.FilteredElderlyList()
	view[0] = s.carol
	view = append(view[:0], view[1:]...)
	s.Len(view, 1)

	fresh := m.FilteredElderlyList()
	s.Len(fresh, 2)
	s.True(fresh[0].Equal(s.alice))
}

func (s *ModelSuite) TestDeleteElderlyCascadesIntoPairView() {
	m := s.newModel()
	_, err := m.AddPair(s.ctx, s.alice.Nric(), s.ben.Nric())
	s.Require().NoError(err)
	_, err = m.AddPair(s.ctx, s.alice.Nric(), s.dave.Nric())
	s.Require().NoError(err)
	_, err = m.AddPair(s.ctx, s.carol.Nric(), s.dave.Nric())
	s.Require().NoError(err)

	removed, err := m.DeleteElderly(s.ctx, s.alice.Nric())
	s.Require().NoError(err)
	s.True(removed.IsSame(s.alice))

	pairs := m.FilteredPairList()
	s.Len(pairs, 1)
	s.Equal(s.carol.Nric(), pairs[0].Key().Elderly)
	s.Equal(2.0, promtestutil.ToFloat64(s.metrics.CascadedPairs))
}

func (s *ModelSuite) TestFailedMutationChangesNothing() {
	m := s.newModel()
	_, err := m.AddPair(s.ctx, testutil.TestNrics.Elderly3, s.ben.Nric())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.False(m.Dirty())

	_, err = m.DeletePair(s.ctx, s.alice.Nric(), s.ben.Nric())
	s.Equal(store.ErrPairNotFound, err)

	err = m.AddVolunteer(s.ctx, s.ben)
	s.Equal(store.ErrDuplicateVolunteer, err)
	s.False(m.Dirty())
}

func (s *ModelSuite) TestEachMutationPublishesOneEvent() {
	registry := store.New()
	s.mockStorage.EXPECT().Read(gomock.Any()).Return(registry, nil)
	m := New(s.ctx, s.mockStorage, WithLogger(s.logger), WithChangePublisher(s.mockPublisher))

	var published []events.Type
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			published = append(published, e.Type)
			return nil
		}).Times(6)

	s.Require().NoError(m.AddElderly(s.ctx, s.alice))
	s.Require().NoError(m.AddVolunteer(s.ctx, s.ben))
	_, err := m.AddPair(s.ctx, s.alice.Nric(), s.ben.Nric())
	s.Require().NoError(err)
	edited := testutil.NewVolunteerBuilder().WithName("Ben Tan").Build()
	s.Require().NoError(m.SetVolunteer(s.ctx, s.ben.Nric(), edited))
	_, err = m.DeletePair(s.ctx, s.alice.Nric(), s.ben.Nric())
	s.Require().NoError(err)
	m.ResetData(s.ctx, store.New())

	s.Equal([]events.Type{
		events.ElderlyAdded, events.VolunteerAdded, events.PairAdded,
		events.VolunteerEdited, events.PairDeleted, events.RegistryCleared,
	}, published)
	s.Empty(m.FilteredElderlyList())
}

func (s *ModelSuite) TestPublishFailureDoesNotFailMutation() {
	s.mockStorage.EXPECT().Read(gomock.Any()).Return(store.New(), nil)
	m := New(s.ctx, s.mockStorage, WithMetrics(s.metrics), WithChangePublisher(s.mockPublisher))
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	s.NoError(m.AddElderly(s.ctx, s.alice))
	s.True(m.HasElderly(s.alice.Nric()))
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.PublishFailures))
}

func (s *ModelSuite) TestSave() {
	s.Run("skips when clean", func() {
		m := s.newModel()
		s.NoError(m.Save(s.ctx))
	})

	s.Run("writes a snapshot and clears dirty", func() {
		m := s.newModel()
		_, err := m.AddPair(s.ctx, s.alice.Nric(), s.ben.Nric())
		s.Require().NoError(err)

		s.mockStorage.EXPECT().Write(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fl *store.FriendlyLink) error {
				s.True(fl.HasPair(s.alice.Nric(), s.ben.Nric()))
				return nil
			})
		s.NoError(m.Save(s.ctx))
		s.False(m.Dirty())
	})

	s.Run("failed write keeps memory state and stays dirty", func() {
		m := s.newModel()
		s.Require().NoError(m.AddElderly(s.ctx, testutil.NewElderlyBuilder().WithNric(testutil.TestNrics.Elderly3).Build()))

		s.mockStorage.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
		err := m.Save(s.ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
		s.True(m.Dirty())
		s.True(m.HasElderly(testutil.TestNrics.Elderly3))
	})
}

func (s *ModelSuite) TestCheckIsForwarded() {
	m := s.newModel()
	_, err := m.AddPair(s.ctx, s.carol.Nric(), s.dave.Nric())
	s.Require().NoError(err)

	paired := func(models.Elderly, models.Volunteer) bool { return true }
	s.True(m.CheckElderly(s.carol.Nric(), paired))
	s.True(m.CheckVolunteer(s.dave.Nric(), paired))
	s.False(m.CheckElderly(s.alice.Nric(), paired))
}
