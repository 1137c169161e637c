package commands

import (
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents a request to record payment for a
// submitted order. The payment reference comes from the payment provider.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.OrderID
	paymentReference string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to mark an order as paid.
// The aggregate validates the reference, so the domain owns the failure message.
func NewMarkOrderPaidCommand(orderID kernel.OrderID, paymentReference string) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}
	cmd.paymentReference = paymentReference

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c MarkOrderPaidCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// PaymentReference returns the payment provider's reference.
func (c MarkOrderPaidCommand) PaymentReference() string {
	return c.paymentReference
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
