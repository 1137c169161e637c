package commands_test

import (
	"testing"

	"salesorder/internal/core/application/usecases/commands"
	"salesorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderLineCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewOrderID()
	productID := kernel.NewProductID()

	cmd, err := commands.NewAddOrderLineCommand(orderID, productID, "Widget", qty(t, 3), gbp(t, "25.00"))

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.ProductID().IsEqual(productID))
	assert.Equal(t, "Widget", cmd.ProductName())
	assert.Equal(t, 3, cmd.Quantity().Value())
	assert.Equal(t, "25", cmd.UnitPrice().Amount().String())
}

func TestNewAddOrderLineCommand_InvalidOrderID(t *testing.T) {
	var orderID kernel.OrderID

	_, err := commands.NewAddOrderLineCommand(orderID, kernel.NewProductID(), "Widget", qty(t, 1), gbp(t, "1.00"))

	require.Error(t, err)
}

func TestNewAddOrderLineCommand_InvalidQuantity(t *testing.T) {
	var quantity kernel.Quantity

	_, err := commands.NewAddOrderLineCommand(
		kernel.NewOrderID(), kernel.NewProductID(), "Widget", quantity, gbp(t, "1.00"))

	require.Error(t, err)
}

func TestNewAddOrderLineCommand_InvalidUnitPrice(t *testing.T) {
	var unitPrice kernel.Money

	_, err := commands.NewAddOrderLineCommand(
		kernel.NewOrderID(), kernel.NewProductID(), "Widget", qty(t, 1), unitPrice)

	require.Error(t, err)
}

func TestAddOrderLineCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AddOrderLineCommand{}

	require.ErrorIs(t, cmd.Validate(), commands.ErrAddOrderLineCommandIsNotConstructed)
}
