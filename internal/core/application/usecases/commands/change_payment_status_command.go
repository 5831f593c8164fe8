package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

// ChangePaymentStatusCommand represents a request to set an order's billing
// status. Any member of the payment status set is reachable from any other.
type ChangePaymentStatusCommand struct {
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewChangePaymentStatusCommand creates a command to set an order's payment
// status.
func NewChangePaymentStatusCommand(orderID kernel.UUID, paymentStatus order.PaymentStatus) (ChangePaymentStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	if err := paymentStatus.Validate(); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	return ChangePaymentStatusCommand{
		orderID:       orderID,
		paymentStatus: paymentStatus,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the requested billing status.
func (c ChangePaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}
