// Package kernel contains the shared value objects of the domain model.
//
// The kernel provides building blocks used by every aggregate:
//   - UUID: validated entity identifiers backed by github.com/google/uuid
//   - Money: fixed-precision monetary amounts backed by shopspring/decimal
//
// All kernel types are immutable value objects. They validate themselves at
// construction so that aggregates composed from them can rely on their
// invariants without re-checking.
package kernel
