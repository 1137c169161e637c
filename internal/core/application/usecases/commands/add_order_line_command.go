package commands

import (
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"
)

var ErrAddOrderLineCommandIsNotConstructed = errors.New(
	"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
)

// AddOrderLineCommand represents a request to add a product line to a draft
// order. Adding a product that is already present increases the existing
// line's quantity instead of appending a duplicate.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.OrderID
	productID   kernel.ProductID
	productName string
	quantity    kernel.Quantity
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a line to an order.
// The product name is validated by the aggregate, not here, so the domain
// owns the failure message.
func NewAddOrderLineCommand(
	orderID kernel.OrderID,
	productID kernel.ProductID,
	productName string,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setProductName(productName),
		cmd.setQuantity(quantity),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddOrderLineCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ProductID returns the product being added.
func (c AddOrderLineCommand) ProductID() kernel.ProductID {
	return c.productID
}

// ProductName returns the display name for the line.
func (c AddOrderLineCommand) ProductName() string {
	return c.productName
}

// Quantity returns how many units to add.
func (c AddOrderLineCommand) Quantity() kernel.Quantity {
	return c.quantity
}

// UnitPrice returns the per-unit price.
func (c AddOrderLineCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderLineCommand) setProductName(productName string) error {
	c.productName = productName
	return nil
}

func (c *AddOrderLineCommand) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}

func (c *AddOrderLineCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}
