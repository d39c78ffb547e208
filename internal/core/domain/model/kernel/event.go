package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate during a state transition.
// Events are collected by the unit of work and published only after a successful commit.
type DomainEvent interface {
	// EventName is the routing key, e.g. "order.partner_assigned".
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// EventRecorder is embedded by aggregates to implement EventSource.
type EventRecorder struct {
	events []DomainEvent
}

// Record appends an event.
func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	return r.events
}

// ClearDomainEvents drops recorded events once they have been handed to a publisher.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
