package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Storage is an external transactional record store accessed strictly per
// record by id; no operation touches more than one row.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write carries the version the aggregate was read at: when the
	// stored version differs the update is rejected with
	// errs.VersionIsInvalidError instead of silently overwriting a
	// concurrent change. A missing row yields errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// A missing row yields errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete hard-removes an order. A missing row yields
	// errs.ObjectNotFoundError; callers decide whether that is an error
	// or a no-op at their contract level.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPendingCreatedBefore retrieves orders still in pending status
	// created strictly before the cutoff. Used by the stale-order
	// cancellation job.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
