package commands

import (
	"errors"
	"time"

	"backoffice/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrCancelStaleOrdersCutoffIsZero = errors.New("cutoff time is required")
)

// CancelStaleOrdersCommand represents a maintenance request to cancel every
// order still pending that was created before the cutoff.
type CancelStaleOrdersCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale pending
// orders.
func NewCancelStaleOrdersCommand(cutoff time.Time) (CancelStaleOrdersCommand, error) {
	if cutoff.IsZero() {
		return CancelStaleOrdersCommand{}, ErrCancelStaleOrdersCutoffIsZero
	}

	return CancelStaleOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the creation-time threshold.
func (c CancelStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
