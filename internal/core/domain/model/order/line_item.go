package order

import (
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// LineItem is a value object representing one product entry within an order.
// It carries a quantity, a unit price, and optionally an explicit precomputed
// line subtotal. When the explicit subtotal is present it takes precedence
// over quantity × unit price in totals derivation (trusted verbatim, never
// re-validated against the other two fields).
type LineItem struct {
	// productID references the product catalog entry (nil for free-form lines).
	productID *kernel.UUID

	// description is the human-readable label shown on the order.
	description string

	// quantity is the number of units (must be positive).
	quantity int

	// unitPrice is the price per unit (must not be negative).
	unitPrice kernel.Money

	// lineSubtotal is the optional caller-supplied subtotal override.
	lineSubtotal *kernel.Money
}

// NewLineItem creates a validated line item.
// Quantity must be positive and all monetary figures non-negative.
func NewLineItem(
	productID *kernel.UUID,
	description string,
	quantity int,
	unitPrice kernel.Money,
	lineSubtotal *kernel.Money,
) (LineItem, error) {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return LineItem{}, err
		}
	}

	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := unitPrice.ValidateNonNegative("unit price"); err != nil {
		return LineItem{}, err
	}

	if lineSubtotal != nil {
		if err := lineSubtotal.ValidateNonNegative("line subtotal"); err != nil {
			return LineItem{}, err
		}
	}

	return LineItem{
		productID:    productID,
		description:  description,
		quantity:     quantity,
		unitPrice:    unitPrice,
		lineSubtotal: lineSubtotal,
	}, nil
}

// ProductID returns the referenced product id, or nil for free-form lines.
func (li LineItem) ProductID() *kernel.UUID {
	return li.productID
}

// Description returns the line label.
func (li LineItem) Description() string {
	return li.description
}

// Quantity returns the number of units.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price per unit.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// LineSubtotal returns the explicit subtotal override, or nil when the line
// contribution is derived from quantity × unit price.
func (li LineItem) LineSubtotal() *kernel.Money {
	return li.lineSubtotal
}

// Contribution returns the amount this line adds to the order subtotal:
// the explicit line subtotal when present, else quantity × unit price.
func (li LineItem) Contribution() kernel.Money {
	if li.lineSubtotal != nil {
		return *li.lineSubtotal
	}
	return li.unitPrice.MulInt(li.quantity)
}
