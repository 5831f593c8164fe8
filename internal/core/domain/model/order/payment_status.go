package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// PaymentStatus represents the billing state of an order, independent of the
// fulfillment Status. Unlike Status it has no transition graph: any member of
// the set is a legal write at any time, including apparent backward moves
// such as paid -> pending.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of a new order.
	PaymentPending

	// PaymentPaid indicates the order was paid in full.
	PaymentPaid

	// PaymentPartial indicates a partial payment was received.
	PaymentPartial

	// PaymentFailed indicates a payment attempt failed.
	PaymentFailed

	// PaymentRefunded indicates the payment was returned to the customer.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentPartial:  "partial",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentPartial:  "partial",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status
// (e.g. "refunded"). Unknown values yield a validation error.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus is one of the five known values.
func (p PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the wire name of the payment status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
