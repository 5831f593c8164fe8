package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(commands.UpdateOrderCommandParams{
		OrderID: id,
		Items:   []order.LineItem{lineItem(t, 1, "5.00")},
	})
	require.NoError(t, err)
	assert.Equal(t, id, cmd.Params().OrderID)
	require.NoError(t, cmd.Validate())
}

func TestNewUpdateOrderCommand_InvalidOrderID(t *testing.T) {
	notes := "rush delivery"
	_, err := commands.NewUpdateOrderCommand(commands.UpdateOrderCommandParams{
		OrderID: kernel.UUID{},
		Notes:   &notes,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderCommand_NoFields(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(commands.UpdateOrderCommandParams{
		OrderID: kernel.NewUUID(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsEmpty)
}

func TestNewUpdateOrderCommand_EmptyItemsList(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(commands.UpdateOrderCommandParams{
		OrderID: kernel.NewUUID(),
		Items:   []order.LineItem{},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrItemsRequired)
}

func TestNewUpdateOrderCommand_DiscountOnly(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(commands.UpdateOrderCommandParams{
		OrderID:  kernel.NewUUID(),
		Discount: moneyPtr(t, "3.00"),
	})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}
