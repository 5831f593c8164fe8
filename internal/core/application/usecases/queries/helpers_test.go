package queries_test

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// mockAggregateTracker satisfies the repository's tracker dependency in
// read-side tests, where tracked aggregates are irrelevant.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func uuidRef(id kernel.UUID) *kernel.UUID {
	return &id
}

func decimalFromString(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustLineItem(quantity int, unitPrice string) order.LineItem {
	price := kernel.NewMoney(decimal.RequireFromString(unitPrice))
	li, err := order.NewLineItem(nil, "widget", quantity, price, nil)
	if err != nil {
		panic(err)
	}
	return li
}

func mustOrder(params order.NewOrderParams) *order.Order {
	if len(params.Items) == 0 {
		params.Items = []order.LineItem{mustLineItem(1, "10.00")}
	}
	if params.ClientePersonaID == nil && params.ClienteOrgID == nil {
		params.ClientePersonaID = uuidRef(kernel.NewUUID())
	}

	aggregate, err := order.NewOrder(params)
	if err != nil {
		panic(err)
	}
	return aggregate
}
