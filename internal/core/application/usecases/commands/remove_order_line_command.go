package commands

import (
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"
)

var ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
	"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
)

// RemoveOrderLineCommand represents a request to remove a product line from
// a draft order.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	productID kernel.ProductID

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates a command to remove a line from an order.
func NewRemoveOrderLineCommand(orderID kernel.OrderID, productID kernel.ProductID) (RemoveOrderLineCommand, error) {
	cmd := RemoveOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemoveOrderLineCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ProductID returns the product whose line is removed.
func (c RemoveOrderLineCommand) ProductID() kernel.ProductID {
	return c.productID
}

func (c *RemoveOrderLineCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderLineCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
