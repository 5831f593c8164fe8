package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrUpdateOrderCommandIsEmpty = errors.New("update requires at least one field")
)

// UpdateOrderCommandParams carries the fields a general update may change.
// Nil means "keep the stored value". Lifecycle and payment status are
// excluded; they have their own commands.
type UpdateOrderCommandParams struct {
	OrderID          kernel.UUID
	Items            []order.LineItem
	Discount         *kernel.Money
	Tax              *kernel.Money
	ClientePersonaID *kernel.UUID
	ClienteOrgID     *kernel.UUID
	PaymentMethodID  *kernel.UUID
	ShippingMethodID *kernel.UUID
	Notes            *string
}

// UpdateOrderCommand represents a request to change the mutable fields of an
// existing order.
type UpdateOrderCommand struct {
	params UpdateOrderCommandParams

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order. At least one
// field must be supplied; an items list, when present, must be non-empty.
func NewUpdateOrderCommand(params UpdateOrderCommandParams) (UpdateOrderCommand, error) {
	if err := params.OrderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	hasChange := params.Items != nil ||
		params.Discount != nil ||
		params.Tax != nil ||
		params.Notes != nil ||
		params.ClientePersonaID != nil ||
		params.ClienteOrgID != nil ||
		params.PaymentMethodID != nil ||
		params.ShippingMethodID != nil
	if !hasChange {
		return UpdateOrderCommand{}, ErrUpdateOrderCommandIsEmpty
	}

	if params.Items != nil && len(params.Items) == 0 {
		return UpdateOrderCommand{}, order.ErrItemsRequired
	}

	return UpdateOrderCommand{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// Params returns the requested field changes.
func (c UpdateOrderCommand) Params() UpdateOrderCommandParams {
	return c.params
}
