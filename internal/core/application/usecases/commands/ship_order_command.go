package commands

import (
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a request to ship a paid order with a carrier
// tracking number.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.OrderID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order.
// The aggregate validates the tracking number, so the domain owns the failure message.
func NewShipOrderCommand(orderID kernel.OrderID, trackingNumber string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ShipOrderCommand{}, err
	}
	cmd.trackingNumber = trackingNumber

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ShipOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// TrackingNumber returns the carrier's tracking number.
func (c ShipOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
