package order

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"
)

// Status represents the fulfillment-lifecycle state of an order.
// It implements a state machine with a strict whitelist of transitions:
//
//	pending ──> confirmed ──> in_preparation ──> shipped ──> delivered ──> returned
//	   │            │               │               │
//	   └────────────┴───────────────┴───────────────┴──> cancelled
//
// cancelled and returned are terminal: no outbound transitions exist.
// Any change to the business rules means editing the transition table below,
// never the surrounding logic.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a newly created order.
	StatusPending

	// StatusConfirmed indicates the order has been accepted.
	StatusConfirmed

	// StatusInPreparation indicates the order is being prepared.
	StatusInPreparation

	// StatusShipped indicates the order has left for delivery.
	StatusShipped

	// StatusDelivered indicates the order reached the customer.
	StatusDelivered

	// StatusCancelled is a terminal state reachable from every
	// non-terminal state except delivered.
	StatusCancelled

	// StatusReturned is a terminal state reachable only from delivered.
	StatusReturned
)

// ErrIllegalTransition is the unwrap target for every rejected status change.
var ErrIllegalTransition = errors.New("status transition is not allowed")

// statusTransitions is the whitelist of legal status changes.
// Absent keys and empty lists both mean "no outbound transitions".
// The table is data, not logic: it is never inferred or computed.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:       {StatusConfirmed, StatusCancelled},
		StatusConfirmed:     {StatusInPreparation, StatusCancelled},
		StatusInPreparation: {StatusShipped, StatusCancelled},
		StatusShipped:       {StatusDelivered, StatusCancelled},
		StatusDelivered:     {StatusReturned},
		StatusCancelled:     {},
		StatusReturned:      {},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:       "unknown",
		StatusPending:       "pending",
		StatusConfirmed:     "confirmed",
		StatusInPreparation: "in_preparation",
		StatusShipped:       "shipped",
		StatusDelivered:     "delivered",
		StatusCancelled:     "cancelled",
		StatusReturned:      "returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:       "pending",
		StatusConfirmed:     "confirmed",
		StatusInPreparation: "in_preparation",
		StatusShipped:       "shipped",
		StatusDelivered:     "delivered",
		StatusCancelled:     "cancelled",
		StatusReturned:      "returned",
	}
}

// StatusFromString parses the wire representation of a status
// (e.g. "in_preparation"). Unknown values yield a validation error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the seven known states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outbound transitions.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0
}

// AllowedTransitions returns the whitelist of statuses reachable from s.
// The returned slice is a copy; for terminal or invalid statuses it is empty.
func (s Status) AllowedTransitions() []Status {
	allowed := statusTransitions()[s]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

// CanTransitionTo reports whether the whitelist permits moving from s to
// target. Self-transitions are not in the table and therefore rejected.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates a requested status change against the whitelist.
// Returns the new status on success, or an IllegalTransitionError naming the
// denied pair and the currently allowed targets.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if !s.CanTransitionTo(target) {
		return StatusUnknown, &IllegalTransitionError{From: s, To: target}
	}

	return target, nil
}

// IllegalTransitionError reports a status change rejected by the transition
// table. The message names the denied pair and every currently legal target,
// rendering an empty list as "none".
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	allowed := e.From.AllowedTransitions()
	names := make([]string, 0, len(allowed))
	for _, s := range allowed {
		names = append(names, s.String())
	}

	rendered := "none"
	if len(names) > 0 {
		rendered = strings.Join(names, ", ")
	}

	return fmt.Sprintf("transition not allowed: %s -> %s (allowed: %s)", e.From, e.To, rendered)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
