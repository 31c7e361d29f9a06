package service

import (
	"log/slog"

	registrymetrics "friendlylink/internal/registry/metrics"
)

// modelConfig holds optional dependencies for the model.
type modelConfig struct {
	logger    *slog.Logger
	metrics   *registrymetrics.Metrics
	publisher ChangePublisher
}

// Option configures a Model.
type Option func(c *modelConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *modelConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *registrymetrics.Metrics) Option {
	return func(c *modelConfig) {
		c.metrics = m
	}
}

func WithChangePublisher(p ChangePublisher) Option {
	return func(c *modelConfig) {
		c.publisher = p
	}
}
