package commands

import (
	"context"

	"backoffice/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// invariant checks, totals derivation (or the explicit override path), and
// transactional persistence.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The aggregate constructor
// derives the monetary totals and defaults both status tracks to pending;
// nothing is written when validation fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p := cmd.Params()
	newOrder, err := order.NewOrder(order.NewOrderParams{
		ID:               p.OrderID,
		OrderNumber:      p.OrderNumber,
		Status:           p.Status,
		PaymentStatus:    p.PaymentStatus,
		ClientePersonaID: p.ClientePersonaID,
		ClienteOrgID:     p.ClienteOrgID,
		Items:            p.Items,
		Discount:         p.Discount,
		Tax:              p.Tax,
		SubtotalOverride: p.SubtotalOverride,
		TotalOverride:    p.TotalOverride,
		PaymentMethodID:  p.PaymentMethodID,
		ShippingMethodID: p.ShippingMethodID,
		Notes:            p.Notes,
	})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
