package logic

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"friendlylink/internal/platform/privacy"
	"friendlylink/internal/platform/tracer"
	registrymetrics "friendlylink/internal/registry/metrics"
	"friendlylink/internal/registry/service"
	"friendlylink/internal/registry/service/mocks"
	dErrors "friendlylink/pkg/domain-errors"
	"friendlylink/pkg/platform/sentinel"
)

// recordingTracer keeps every finished span.
type recordingTracer struct {
	mu    sync.Mutex
	spans []*recordedSpan
}

type recordedSpan struct {
	name   string
	attrs  map[string]any
	events []string
	err    error
	ended  bool
}

func (t *recordingTracer) Start(ctx context.Context, name string, attrs ...tracer.Attribute) (context.Context, tracer.Span) {
	s := &recordedSpan{name: name, attrs: map[string]any{}}
	s.SetAttributes(attrs...)
	t.mu.Lock()
	t.spans = append(t.spans, s)
	t.mu.Unlock()
	return ctx, s
}

func (s *recordedSpan) End(err error) { s.err, s.ended = err, true }

func (s *recordedSpan) SetAttributes(attrs ...tracer.Attribute) {
	for _, a := range attrs {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordedSpan) AddEvent(name string, attrs ...tracer.Attribute) {
	s.events = append(s.events, name)
	s.SetAttributes(attrs...)
}

type ManagerSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockStorage *mocks.MockStorage
	metrics     *registrymetrics.Metrics
	tracer      *recordingTracer
	model       *service.Model
	manager     *Manager
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockStorage = mocks.NewMockStorage(s.ctrl)
	s.metrics = registrymetrics.New(prometheus.NewRegistry())
	s.tracer = &recordingTracer{}

	s.mockStorage.EXPECT().Read(gomock.Any()).Return(nil, sentinel.ErrNoData)
	s.model = service.New(s.ctx, s.mockStorage)
	s.manager = New(s.model, WithMetrics(s.metrics), WithTracer(s.tracer))
}

func (s *ManagerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ManagerSuite) commands(word, outcome string) float64 {
	return promtestutil.ToFloat64(s.metrics.Commands.WithLabelValues(word, outcome))
}

func (s *ManagerSuite) TestSuccessfulMutationIsSaved() {
	s.mockStorage.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.manager.Execute(s.ctx, "add_elderly n/Alice Tan ic/S1234567A")
	s.Require().NoError(err)
	s.Contains(res.Feedback, "New elderly added")
	s.False(s.model.Dirty())
	s.Equal(1.0, s.commands("add_elderly", registrymetrics.OutcomeOK))

	s.Require().Len(s.tracer.spans, 2)
	cmdSpan := s.tracer.spans[0]
	s.Equal(tracer.SpanCommand, cmdSpan.name)
	s.Equal("add_elderly", cmdSpan.attrs[tracer.AttrCommandWord])
	s.Equal(registrymetrics.OutcomeOK, cmdSpan.attrs[tracer.AttrOutcome])
	s.Contains(cmdSpan.events, tracer.EventParsed)
	s.NotEqual("S1234567A", cmdSpan.attrs[tracer.AttrElderlyRef])
	s.NotEmpty(cmdSpan.attrs[tracer.AttrElderlyRef])
	s.True(cmdSpan.ended)
	s.Equal(tracer.SpanSave, s.tracer.spans[1].name)
}

func (s *ManagerSuite) TestEditTargetIsTaggedWithoutCategory() {
	s.mockStorage.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := s.manager.Execute(s.ctx, "add_volunteer n/Ben Lim ic/T7654321B")
	s.Require().NoError(err)
	_, err = s.manager.Execute(s.ctx, "edit T7654321B p/91234567")
	s.Require().NoError(err)

	s.Require().Len(s.tracer.spans, 4)
	editSpan := s.tracer.spans[2]
	s.Equal("edit", editSpan.attrs[tracer.AttrCommandWord])
	s.Equal(privacy.HashNric("T7654321B"), editSpan.attrs[tracer.AttrPersonRef])
	s.NotContains(editSpan.attrs, tracer.AttrElderlyRef)
	s.NotContains(editSpan.attrs, tracer.AttrVolunteerRef)
}

func (s *ManagerSuite) TestReadOnlyCommandDoesNotSave() {
	res, err := s.manager.Execute(s.ctx, "stats")
	s.Require().NoError(err)
	s.Contains(res.Feedback, "Elderly: 0")
	s.Len(s.tracer.spans, 1)
}

func (s *ManagerSuite) TestParseError() {
	_, err := s.manager.Execute(s.ctx, "pair nl/bad nv/bad")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	s.Equal(1.0, s.commands("pair", registrymetrics.OutcomeParseError))

	_, err = s.manager.Execute(s.ctx, "dance")
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	s.Equal(1.0, s.commands("unknown", registrymetrics.OutcomeParseError))
	s.Error(s.tracer.spans[1].err)
}

func (s *ManagerSuite) TestExecutionError() {
	_, err := s.manager.Execute(s.ctx, "delete_elderly S1234567A")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal(1.0, s.commands("delete_elderly", registrymetrics.OutcomeExecutionError))
}

func (s *ManagerSuite) TestFailedSaveKeepsResult() {
	s.mockStorage.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	res, err := s.manager.Execute(s.ctx, "add_volunteer n/Ben Lim ic/T7654321B")
	s.Require().Error(err)
	s.Contains(res.Feedback, "New volunteer added")
	s.True(s.model.Dirty())
	s.True(s.model.HasVolunteer("T7654321B"))
}

func (s *ManagerSuite) TestExit() {
	res, err := s.manager.Execute(s.ctx, "exit")
	s.Require().NoError(err)
	s.True(res.Exit)
}
