package order

import "backoffice/internal/core/domain/model/kernel"

// CalculateTotals derives the monetary figures of an order from its line
// items: subtotal is the sum of every line contribution, total is
// subtotal − discount + tax. Zero-value Money stands in for a missing
// discount or tax.
//
// The function is pure: no side effects, no hidden state, deterministic for
// the same inputs. Enforcing a non-empty item list is the caller's concern.
func CalculateTotals(items []LineItem, discount, tax kernel.Money) (subtotal, total kernel.Money) {
	subtotal = kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.Contribution())
	}

	total = subtotal.Sub(discount).Add(tax)
	return subtotal, total
}
