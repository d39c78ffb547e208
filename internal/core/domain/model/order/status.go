package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Accepted ──> Preparing ──> Ready ──> PickedUp ──> Delivered
//	  │           │             │           │          │
//	  │           └─────────────┴───────────┴──────────┴──> Cancelled
//	  ├──> Rejected
//	  └──> Cancelled
//
// Accepted, Preparing, Ready and PickedUp are the active statuses: an order in one of them
// occupies the partner assigned to it. Delivered, Cancelled and Rejected are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota
	Placed
	Accepted
	Preparing
	Ready
	PickedUp
	Delivered
	Cancelled
	Rejected
)

var statusNames = map[Status]string{
	Placed:    "placed",
	Accepted:  "accepted",
	Preparing: "preparing",
	Ready:     "ready",
	PickedUp:  "picked_up",
	Delivered: "delivered",
	Cancelled: "cancelled",
	Rejected:  "rejected",
}

var transitions = map[Status][]Status{
	Placed:    {Accepted, Rejected, Cancelled},
	Accepted:  {Preparing, Cancelled},
	Preparing: {Ready, Cancelled},
	Ready:     {PickedUp, Cancelled},
	PickedUp:  {Delivered, Cancelled},
}

// ActiveStatuses lists the statuses that make the assigned partner occupied.
func ActiveStatuses() []Status {
	return []Status{Accepted, Preparing, Ready, PickedUp}
}

// ActiveStatusNames is ActiveStatuses in storage form, for use in SQL filters.
func ActiveStatusNames() []string {
	active := ActiveStatuses()
	names := make([]string, 0, len(active))
	for _, s := range active {
		names = append(names, s.String())
	}
	return names
}

// ParseStatus converts the storage/wire form ("picked_up") back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the storage form of the status, "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsActive reports whether an order in this status occupies its partner.
func (s Status) IsActive() bool {
	switch s { //nolint:exhaustive // only active statuses matter here
	case Accepted, Preparing, Ready, PickedUp:
		return true
	default:
		return false
	}
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled || s == Rejected
}

// TransitionTo validates the move from s to next and returns next.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := errors.Join(s.Validate(), next.Validate()); err != nil {
		return Unknown, err
	}

	for _, allowed := range transitions[s] {
		if allowed == next {
			return next, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("cannot move from %s to %s", s, next),
	)
}

// MarshalText encodes the storage form so events and DTOs carry "picked_up" rather than 5.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
