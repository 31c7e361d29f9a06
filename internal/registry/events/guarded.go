package events

import (
	"context"
	"fmt"
	"log/slog"

	"friendlylink/pkg/platform/circuit"
	"friendlylink/pkg/platform/sentinel"
)

// Publisher ships one event.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// GuardedPublisher stops calling an unhealthy publisher so that a broker
// outage does not slow every command down. Refused events fail with
// sentinel.ErrUnavailable.
type GuardedPublisher struct {
	next    Publisher
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewGuardedPublisher(next Publisher, breaker *circuit.Breaker, logger *slog.Logger) *GuardedPublisher {
	return &GuardedPublisher{next: next, breaker: breaker, logger: logger}
}

func (g *GuardedPublisher) Publish(ctx context.Context, event Event) error {
	if !g.breaker.Allow() {
		return fmt.Errorf("%w: %s circuit open, dropped %s", sentinel.ErrUnavailable, g.breaker.Name(), event.Type)
	}

	err := g.next.Publish(ctx, event)
	var change circuit.StateChange
	if err != nil {
		change = g.breaker.RecordFailure()
	} else {
		change = g.breaker.RecordSuccess()
	}

	if g.logger != nil {
		switch {
		case change.Opened:
			g.logger.Warn("change publisher circuit opened", "breaker", g.breaker.Name(), "error", err)
		case change.Closed:
			g.logger.Info("change publisher circuit closed", "breaker", g.breaker.Name())
		}
	}
	return err
}
