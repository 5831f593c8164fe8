// Package order contains the order aggregate and its lifecycle rules.
//
// The package owns the two status tracks of an order:
//   - Status, the fulfillment lifecycle, guarded by a strict whitelist
//     transition table (see status.go)
//   - PaymentStatus, the billing state, a free-set value with no graph
//
// It also owns the monetary derivation rules: CalculateTotals turns line
// items plus discount and tax into subtotal and total, and the aggregate
// re-derives these figures whenever its items change. Caller-supplied totals
// at creation time are trusted verbatim through an isolated override path.
//
// Everything here is pure domain logic: no I/O, no persistence concerns.
package order
