package commands_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func moneyPtr(t *testing.T, s string) *kernel.Money {
	t.Helper()
	m := money(t, s)
	return &m
}

func lineItem(t *testing.T, quantity int, unitPrice string) order.LineItem {
	t.Helper()
	price := kernel.NewMoney(decimal.RequireFromString(unitPrice))
	li, err := order.NewLineItem(nil, "widget", quantity, price, nil)
	require.NoError(t, err)
	return li
}

func uuidPtr(id kernel.UUID) *kernel.UUID {
	return &id
}

func validCreateParams(t *testing.T) commands.CreateOrderCommandParams {
	t.Helper()
	return commands.CreateOrderCommandParams{
		OrderID:          kernel.NewUUID(),
		ClientePersonaID: uuidPtr(kernel.NewUUID()),
		Items:            []order.LineItem{lineItem(t, 2, "10.00")},
		Discount:         kernel.ZeroMoney(),
		Tax:              kernel.ZeroMoney(),
	}
}

func storedOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(order.NewOrderParams{
		ID:               id,
		ClientePersonaID: uuidPtr(kernel.NewUUID()),
		Items:            []order.LineItem{lineItem(t, 2, "10.00")},
	})
	require.NoError(t, err)
	return aggregate
}
