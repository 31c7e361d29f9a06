package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"friendlylink/internal/platform/kafka/producer"
)

// Producer is the subset of the Kafka producer the publisher needs.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaPublisher writes events as JSON to one topic.
type KafkaPublisher struct {
	producer Producer
	topic    string
	logger   *slog.Logger
}

func NewKafkaPublisher(p Producer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: p, topic: topic, logger: logger}
}

func (k *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := &producer.Message{
		Topic: k.topic,
		Key:   []byte(event.Key()),
		Value: payload,
		Headers: map[string]string{
			"event_type": string(event.Type),
			"event_id":   event.ID.String(),
		},
	}
	if err := k.producer.Produce(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	if k.logger != nil {
		k.logger.Debug("registry event published", "type", event.Type, "event_id", event.ID)
	}
	return nil
}

// NopPublisher drops every event. Used when Kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
