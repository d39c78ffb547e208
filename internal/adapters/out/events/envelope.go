// Package events publishes committed domain events to a broker.
//
// Every event is wrapped in an Envelope and encoded as JSON. The event name is
// used as the RabbitMQ routing key and as a Kafka header; the aggregate id is the
// Kafka message key so events of one order or wallet stay in one partition.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// Envelope is the wire form of a domain event.
type Envelope struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AggregateID string    `json:"aggregateId"`
	OccurredAt  time.Time `json:"occurredAt"`
	Payload     any       `json:"payload"`
}

// NewEnvelope wraps event under a fresh message id.
func NewEnvelope(event kernel.DomainEvent) Envelope {
	return Envelope{
		ID:          kernel.NewUUID().String(),
		Name:        event.EventName(),
		AggregateID: event.AggregateID().String(),
		OccurredAt:  event.OccurredAt().UTC(),
		Payload:     event,
	}
}

func (e Envelope) Encode() ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", e.Name, err)
	}
	return body, nil
}
