package commands

import (
	"context"
)

// UpdateOrderCommandHandler applies a general field update to an order:
// line items with totals recomputation, customer references, fulfillment
// metadata, and notes. Status tracks are out of scope here.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order inside a transaction, applies the requested
// changes through the aggregate, and persists with the version check.
// Changing discount or tax without a new item list re-derives the totals
// over the stored items.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	p := cmd.Params()
	aggregate, err := uow.OrderRepository().Get(ctx, p.OrderID)
	if err != nil {
		return err
	}

	if p.ClientePersonaID != nil {
		if err = aggregate.SetClientePersona(*p.ClientePersonaID); err != nil {
			return err
		}
	}

	if p.ClienteOrgID != nil {
		if err = aggregate.SetClienteOrg(*p.ClienteOrgID); err != nil {
			return err
		}
	}

	if p.Items != nil || p.Discount != nil || p.Tax != nil {
		items := p.Items
		if items == nil {
			items = aggregate.Items()
		}
		if err = aggregate.ChangeItems(items, p.Discount, p.Tax); err != nil {
			return err
		}
	}

	if p.PaymentMethodID != nil {
		if err = aggregate.SetPaymentMethod(*p.PaymentMethodID); err != nil {
			return err
		}
	}

	if p.ShippingMethodID != nil {
		if err = aggregate.SetShippingMethod(*p.ShippingMethodID); err != nil {
			return err
		}
	}

	if p.Notes != nil {
		aggregate.SetNotes(*p.Notes)
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
