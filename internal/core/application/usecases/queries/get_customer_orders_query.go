package queries

import (
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves all orders placed under one customer email.
type GetCustomerOrdersQuery struct {
	customerEmail kernel.Email

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(customerEmail kernel.Email) (GetCustomerOrdersQuery, error) {
	if err := customerEmail.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerEmail: customerEmail,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerEmail returns the normalized email the history is keyed by.
func (q GetCustomerOrdersQuery) CustomerEmail() kernel.Email {
	return q.customerEmail
}

// GetCustomerOrdersQueryResponse is the read model for one order in a
// customer's history.
type GetCustomerOrdersQueryResponse struct {
	ID          kernel.OrderID
	Status      string
	Currency    string
	TotalAmount decimal.Decimal
	LineCount   int
}
