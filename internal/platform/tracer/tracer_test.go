package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNoopTracerReturnsContextUnchanged(t *testing.T) {
	ctx := context.Background()
	got, span := NewNoop().Start(ctx, SpanCommand, String(AttrCommandWord, "add_elderly"))

	assert.Equal(t, ctx, got)
	require.NotNil(t, span)
	span.SetAttributes(Bool(AttrDirty, true))
	span.AddEvent(EventParsed)
	span.End(errors.New("boom"))
}

func TestOTelTracerWithInjectedTracer(t *testing.T) {
	tr := NewOTel(WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), SpanCommand, Int("args", 2))
	require.NotNil(t, ctx)
	span.SetAttributes(String(AttrOutcome, "ok"))
	span.AddEvent(EventParsed, Bool("valid", true))
	span.End(nil)
}

func TestNewOTelDefaultsToGlobalProvider(t *testing.T) {
	tr := NewOTel()
	assert.NotNil(t, tr.tracer)
}

func TestToOTelAttributes(t *testing.T) {
	got := toOTelAttributes([]Attribute{
		String("s", "v"),
		Bool("b", true),
		Int("i", 3),
		{Key: "i64", Value: int64(4)},
		{Key: "skipped", Value: 1.5},
	})

	assert.Equal(t, []attribute.KeyValue{
		attribute.String("s", "v"),
		attribute.Bool("b", true),
		attribute.Int("i", 3),
		attribute.Int64("i64", 4),
	}, got)
	assert.Nil(t, toOTelAttributes(nil))
}
