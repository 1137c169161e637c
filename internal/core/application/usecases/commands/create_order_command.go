package commands

import (
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new draft order for a
// customer with a shipping address.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerEmail   kernel.Email
	shippingAddress kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new draft order.
// The email and address must be constructed value objects.
func NewCreateOrderCommand(customerEmail kernel.Email, shippingAddress kernel.Address) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerEmail(customerEmail),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerEmail returns the ordering customer's email.
func (c CreateOrderCommand) CustomerEmail() kernel.Email {
	return c.customerEmail
}

// ShippingAddress returns the order's shipping address.
func (c CreateOrderCommand) ShippingAddress() kernel.Address {
	return c.shippingAddress
}

func (c *CreateOrderCommand) setCustomerEmail(customerEmail kernel.Email) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}

	c.customerEmail = customerEmail
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress kernel.Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}
