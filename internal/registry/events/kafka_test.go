package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendlylink/internal/platform/kafka/producer"
	"friendlylink/internal/platform/privacy"
)

type recordingProducer struct {
	messages []*producer.Message
	err      error
}

func (r *recordingProducer) Produce(_ context.Context, msg *producer.Message) error {
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, msg)
	return nil
}

func TestKafkaPublisher(t *testing.T) {
	t.Run("serializes event with hashed identities", func(t *testing.T) {
		rec := &recordingProducer{}
		pub := NewKafkaPublisher(rec, "friendlylink.registry.changes", nil)

		event := New(PairAdded, "S1234567A", "T7654321B")
		require.NoError(t, pub.Publish(context.Background(), event))
		require.Len(t, rec.messages, 1)

		msg := rec.messages[0]
		assert.Equal(t, "friendlylink.registry.changes", msg.Topic)
		assert.Equal(t, privacy.HashNric("S1234567A"), string(msg.Key))
		assert.Equal(t, "pair.added", msg.Headers["event_type"])
		assert.NotContains(t, string(msg.Value), "S1234567A")

		var decoded Event
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, event.ID, decoded.ID)
		assert.Equal(t, privacy.HashNric("T7654321B"), decoded.VolunteerRef)
	})

	t.Run("wraps producer failures", func(t *testing.T) {
		pub := NewKafkaPublisher(&recordingProducer{err: errors.New("broker down")}, "t", nil)
		err := pub.Publish(context.Background(), New(ElderlyDeleted, "S1234567A", ""))
		assert.ErrorContains(t, err, "publish elderly.deleted: broker down")
	})
}

func TestEventKeyFallsBackToVolunteer(t *testing.T) {
	e := New(VolunteerAdded, "", "T7654321B")
	assert.Empty(t, e.ElderlyRef)
	assert.Equal(t, e.VolunteerRef, e.Key())
}
