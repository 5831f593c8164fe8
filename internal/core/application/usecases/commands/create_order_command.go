package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommandParams carries the caller-supplied fields for a new
// order. Optional fields are pointers or zero values; defaults and totals
// derivation are the aggregate's concern.
type CreateOrderCommandParams struct {
	OrderID          kernel.UUID
	OrderNumber      string
	Status           order.Status
	PaymentStatus    order.PaymentStatus
	ClientePersonaID *kernel.UUID
	ClienteOrgID     *kernel.UUID
	Items            []order.LineItem
	Discount         kernel.Money
	Tax              kernel.Money
	SubtotalOverride *kernel.Money
	TotalOverride    *kernel.Money
	PaymentMethodID  *kernel.UUID
	ShippingMethodID *kernel.UUID
	Notes            string
}

// CreateOrderCommand represents a request to register a new order.
// Construction fails fast on the two creation invariants (at least one line
// item, at least one customer reference) so an invalid request never reaches
// the store.
type CreateOrderCommand struct {
	params CreateOrderCommandParams

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the order id, the non-empty item list, and the presence of a
// customer reference.
func NewCreateOrderCommand(params CreateOrderCommandParams) (CreateOrderCommand, error) {
	if err := params.OrderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	if len(params.Items) == 0 {
		return CreateOrderCommand{}, order.ErrItemsRequired
	}

	if params.ClientePersonaID == nil && params.ClienteOrgID == nil {
		return CreateOrderCommand{}, order.ErrCustomerRequired
	}

	return CreateOrderCommand{
		params: params,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Params returns the caller-supplied order fields.
func (c CreateOrderCommand) Params() CreateOrderCommandParams {
	return c.params
}
