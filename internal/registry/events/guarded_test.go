package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendlylink/pkg/platform/circuit"
	"friendlylink/pkg/platform/sentinel"
)

func TestGuardedPublisher(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := &recordingProducer{err: errors.New("broker down")}
	breaker := circuit.New("kafka",
		circuit.WithFailureThreshold(2),
		circuit.WithCooldown(time.Minute),
		circuit.WithClock(func() time.Time { return now }),
	)
	pub := NewGuardedPublisher(NewKafkaPublisher(rec, "topic", nil), breaker, nil)

	event := New(ElderlyAdded, "S1234567A", "")
	require.Error(t, pub.Publish(ctx, event))
	require.Error(t, pub.Publish(ctx, event))
	assert.Equal(t, circuit.StateOpen, breaker.State())

	err := pub.Publish(ctx, event)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)

	rec.err = nil
	now = now.Add(time.Minute)
	require.NoError(t, pub.Publish(ctx, event))
	assert.Equal(t, circuit.StateClosed, breaker.State())
	assert.Len(t, rec.messages, 1)
}
