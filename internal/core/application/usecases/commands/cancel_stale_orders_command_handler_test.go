package commands_test

import (
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelStaleOrdersCommandHandler_Handle_CancelsAll(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(-72 * time.Hour)
	cmd, err := commands.NewCancelStaleOrdersCommand(cutoff)
	require.NoError(t, err)

	first := storedOrder(t, kernel.NewUUID())
	second := storedOrder(t, kernel.NewUUID())
	stale := []*order.Order{first, second}

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingCreatedBefore", mock.Anything, cutoff).Return(stale, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, order.StatusCancelled, first.Status())
	assert.Equal(t, order.StatusCancelled, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(-72 * time.Hour)
	cmd, err := commands.NewCancelStaleOrdersCommand(cutoff)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingCreatedBefore", mock.Anything, cutoff).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCancelStaleOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelStaleOrdersCommand{}
	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
