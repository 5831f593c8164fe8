package commands

import (
	"context"
	"errors"

	"backoffice/internal/pkg/errs"
)

// DeleteOrderCommandHandler hard-removes an order regardless of its status.
// Deleting an id that does not exist is a success: the end state is
// identical either way, and the admin UI retries deletes freely.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the order row. A missing row is swallowed and reported as
// success.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return uow.Commit(ctx)
		}
		return err
	}

	return uow.Commit(ctx)
}
