package events

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
)

// LogPublisher writes events to the structured log. It is the default when no
// broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "events")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "domain event",
			"name", event.EventName(),
			"aggregate_id", event.AggregateID().String(),
			"occurred_at", event.OccurredAt(),
		)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
