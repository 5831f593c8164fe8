package kernel

import (
	"fmt"

	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the fixed precision for all monetary amounts.
// Amounts are normalized to two decimal places at construction using
// banker's rounding, so every derived figure (subtotal, total) is exact
// and recomputation is deterministic.
const moneyScale = 2

// Money is a value object representing a monetary amount with a fixed
// two-decimal precision. It carries no currency: the back-office operates
// in a single implicit currency and formatting is out of scope.
//
// The zero value is a valid amount of 0.00. Money is immutable; every
// operation returns a new value.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from an arbitrary decimal, rounding it to the
// fixed two-decimal scale (banker's rounding).
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.RoundBank(moneyScale)}
}

// NewMoneyFromString parses a decimal string such as "12.50" into Money.
// Returns a validation error for malformed input.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount), nil
}

// ZeroMoney returns the 0.00 amount.
func ZeroMoney() Money {
	return Money{}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt multiplies the amount by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two decimal places, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// ValidateNonNegative returns a validation error when the amount is below
// zero. Used for inputs like discounts and taxes that must not be negative.
func (m Money) ValidateNonNegative(paramName string) error {
	if m.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is not greater than or equal to 0", m.String()))
	}
	return nil
}
