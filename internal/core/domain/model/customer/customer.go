package customer

import (
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a participant in the ordering process. It carries the
// contact email orders are keyed by and the historical purchase total
// the pricing service bases loyalty discounts on.
type Customer struct {
	id             kernel.CustomerID
	email          kernel.Email
	totalPurchases kernel.Money
	guard          guard.ConstructorGuard
}

// NewCustomer creates a customer with no purchase history.
func NewCustomer(email kernel.Email) (*Customer, error) {
	zero, err := kernel.NewMoneyZero(kernel.CurrencyGBP)
	if err != nil {
		return nil, err
	}
	return NewCustomerWithHistory(email, zero)
}

// NewCustomerWithHistory creates a customer with a known historical purchase total.
func NewCustomerWithHistory(email kernel.Email, totalPurchases kernel.Money) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(kernel.NewCustomerID()),
		customer.setEmail(email),
		customer.setTotalPurchases(totalPurchases),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id kernel.CustomerID, email kernel.Email, totalPurchases kernel.Money) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setEmail(email),
		customer.setTotalPurchases(totalPurchases),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate checks that the Customer was created via a constructor.
// The zero value of Customer is invalid.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.CustomerID {
	return c.id
}

// Email returns the customer's normalized contact email.
func (c *Customer) Email() kernel.Email {
	return c.email
}

// TotalPurchases returns the customer's historical purchase total.
func (c *Customer) TotalPurchases() kernel.Money {
	return c.totalPurchases
}

func (c *Customer) setID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *Customer) setTotalPurchases(totalPurchases kernel.Money) error {
	if err := totalPurchases.Validate(); err != nil {
		return err
	}

	c.totalPurchases = totalPurchases
	return nil
}
