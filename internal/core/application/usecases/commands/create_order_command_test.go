package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	params := validCreateParams(t)
	cmd, err := commands.NewCreateOrderCommand(params)
	require.NoError(t, err)
	assert.Equal(t, params.OrderID, cmd.Params().OrderID)
	assert.Len(t, cmd.Params().Items, 1)
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	params := validCreateParams(t)
	params.OrderID = kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	params := validCreateParams(t)
	params.Items = nil
	_, err := commands.NewCreateOrderCommand(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrItemsRequired)
}

func TestNewCreateOrderCommand_NoCustomer(t *testing.T) {
	params := validCreateParams(t)
	params.ClientePersonaID = nil
	params.ClienteOrgID = nil
	_, err := commands.NewCreateOrderCommand(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrCustomerRequired)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
