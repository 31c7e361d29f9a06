//go:build integration

package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"friendlylink/internal/platform/kafka/producer"
	"friendlylink/internal/platform/privacy"
	"friendlylink/pkg/testutil/containers"
)

func TestKafkaPublisherDelivers(t *testing.T) {
	ctx := context.Background()
	kc := containers.GetManager().GetKafka(t)
	topic := "friendlylink.registry.test"
	require.NoError(t, kc.CreateTopic(ctx, topic))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := producer.New(producer.DefaultConfig(kc.Brokers[0]), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	pub := NewKafkaPublisher(p, topic, logger)
	event := New(PairAdded, "S1234567A", "T7654321B")
	require.NoError(t, pub.Publish(ctx, event))

	records, err := kc.ReadRecords(ctx, topic, 1, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, records, 1)

	var got Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, event.ID, got.ID)
	require.Equal(t, privacy.HashNric("S1234567A"), string(records[0].Key))
}
