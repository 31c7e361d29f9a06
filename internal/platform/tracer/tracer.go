// Package tracer is a small tracing seam. Callers depend on Tracer and Span;
// OTelTracer backs them with OpenTelemetry and NoopTracer with nothing.
package tracer

import "context"

// Span is an active operation. End must be called exactly once.
type Span interface {
	// End finishes the span, marking it failed when err is non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer starts spans. Implementations are safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Span and attribute names used by the command pipeline.
const (
	SpanCommand = "friendlylink.command"
	SpanSave    = "friendlylink.save"

	AttrCommandWord  = "command.word"
	AttrOutcome      = "command.outcome"
	AttrElderlyRef   = "elderly.ref"
	AttrVolunteerRef = "volunteer.ref"
	AttrPersonRef    = "person.ref"
	AttrDirty        = "registry.dirty"

	EventParsed = "command.parsed"
)
