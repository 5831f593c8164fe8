package commands

import (
	"context"
)

// ChangePaymentStatusCommandHandler sets the billing status of an order.
// Payment status is a free set, so the handler writes whatever valid member
// the caller asked for, including backward moves like paid to pending.
type ChangePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangePaymentStatusCommandHandler creates a handler for payment status
// changes.
func NewChangePaymentStatusCommandHandler(uowFactory OrderUoWFactory) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, sets the payment status, and persists.
func (h *ChangePaymentStatusCommandHandler) Handle(ctx context.Context, cmd ChangePaymentStatusCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.SetPaymentStatus(cmd.PaymentStatus()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
