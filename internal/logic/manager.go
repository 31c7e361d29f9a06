// Package logic runs one line of user input through the parse, execute and
// persist pipeline.
package logic

import (
	"context"
	"io"
	"log/slog"
	"time"

	"friendlylink/internal/command"
	"friendlylink/internal/command/parser"
	"friendlylink/internal/platform/privacy"
	"friendlylink/internal/platform/tracer"
	registrymetrics "friendlylink/internal/registry/metrics"
	"friendlylink/internal/registry/models"
)

// Model is what the pipeline needs from the registry façade.
type Model interface {
	command.Model
	Save(ctx context.Context) error
	Dirty() bool
}

// Manager owns the parser and executes commands against one model. Calls
// must not overlap: commands run one at a time.
type Manager struct {
	model   Model
	parser  *parser.FriendlyLinkParser
	logger  *slog.Logger
	tracer  tracer.Tracer
	metrics *registrymetrics.Metrics
}

type Option func(*Manager)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

func WithTracer(t tracer.Tracer) Option {
	return func(m *Manager) { m.tracer = t }
}

func WithMetrics(metrics *registrymetrics.Metrics) Option {
	return func(m *Manager) { m.metrics = metrics }
}

func New(model Model, opts ...Option) *Manager {
	m := &Manager{model: model, parser: parser.New()}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.tracer == nil {
		m.tracer = tracer.NewNoop()
	}
	return m
}

// Execute parses and runs line. When the command changed the registry the
// model is saved; a failed save is returned alongside the command's result.
func (m *Manager) Execute(ctx context.Context, line string) (result command.Result, err error) {
	word := m.parser.CommandWord(line)
	start := time.Now()
	ctx, span := m.tracer.Start(ctx, tracer.SpanCommand, tracer.String(tracer.AttrCommandWord, word))
	defer func() { span.End(err) }()
	defer m.metrics.ObserveCommand(word, start)

	cmd, err := m.parser.ParseCommand(line)
	if err != nil {
		m.record(span, word, registrymetrics.OutcomeParseError)
		m.logger.Debug("command rejected", "command", word, "error", err)
		return command.Result{}, err
	}
	span.AddEvent(tracer.EventParsed, refAttributes(cmd)...)

	result, err = cmd.Execute(ctx, m.model)
	if err != nil {
		m.record(span, word, registrymetrics.OutcomeExecutionError)
		m.logger.Debug("command failed", "command", word, "error", err)
		return command.Result{}, err
	}
	m.record(span, word, registrymetrics.OutcomeOK)

	if err := m.save(ctx); err != nil {
		return result, err
	}
	return result, nil
}

func (m *Manager) save(ctx context.Context) (err error) {
	dirty := m.model.Dirty()
	if !dirty {
		return nil
	}
	ctx, span := m.tracer.Start(ctx, tracer.SpanSave, tracer.Bool(tracer.AttrDirty, dirty))
	defer func() { span.End(err) }()

	if err = m.model.Save(ctx); err != nil {
		m.logger.Error("failed to save registry", "error", err)
		return err
	}
	return nil
}

func (m *Manager) record(span tracer.Span, word, outcome string) {
	span.SetAttributes(tracer.String(tracer.AttrOutcome, outcome))
	m.metrics.IncrementCommand(word, outcome)
}

// refAttributes describes the records a command touches without exposing
// their NRICs. An edit target's category is unknown until it runs.
func refAttributes(cmd command.Command) []tracer.Attribute {
	var elderly, volunteer, person models.Nric
	switch c := cmd.(type) {
	case command.AddElderly:
		elderly = c.Elderly.Nric()
	case command.AddVolunteer:
		volunteer = c.Volunteer.Nric()
	case command.DeleteElderly:
		elderly = c.Nric
	case command.DeleteVolunteer:
		volunteer = c.Nric
	case command.Edit:
		person = c.Nric
	case command.Pair:
		elderly, volunteer = c.Elderly, c.Volunteer
	case command.DeletePair:
		elderly, volunteer = c.Elderly, c.Volunteer
	}

	var attrs []tracer.Attribute
	if !elderly.IsZero() {
		attrs = append(attrs, tracer.String(tracer.AttrElderlyRef, privacy.HashNric(elderly.String())))
	}
	if !volunteer.IsZero() {
		attrs = append(attrs, tracer.String(tracer.AttrVolunteerRef, privacy.HashNric(volunteer.String())))
	}
	if !person.IsZero() {
		attrs = append(attrs, tracer.String(tracer.AttrPersonRef, privacy.HashNric(person.String())))
	}
	return attrs
}
