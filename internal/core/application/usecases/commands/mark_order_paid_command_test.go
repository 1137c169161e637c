package commands_test

import (
	"testing"

	"salesorder/internal/core/application/usecases/commands"
	"salesorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkOrderPaidCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewOrderID()

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, "PAY-42")

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.Equal(t, "PAY-42", cmd.PaymentReference())
}

func TestNewMarkOrderPaidCommand_InvalidOrderID(t *testing.T) {
	var orderID kernel.OrderID

	_, err := commands.NewMarkOrderPaidCommand(orderID, "PAY-42")

	require.Error(t, err)
}

func TestMarkOrderPaidCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.MarkOrderPaidCommand{}

	require.ErrorIs(t, cmd.Validate(), commands.ErrMarkOrderPaidCommandIsNotConstructed)
}
