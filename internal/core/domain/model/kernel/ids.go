package kernel

import (
	"fmt"

	"salesorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// Identifiers are type-distinct wrappers over a 128-bit random value.
// OrderID, OrderLineID, ProductID and CustomerID share the same underlying
// representation but are never interchangeable: assigning one identifier
// domain to another is a compile error.
//
// The zero value of every identifier is invalid. NewXxxID generates a fresh
// random identifier; XxxIDFrom and XxxIDFromString reject the nil UUID so an
// identifier constructed from an external value is always meaningful.
//
// Example:
//
//	id, err := kernel.OrderIDFromString("7f9c24e5-2b1a-4f0e-9c3d-1a2b3c4d5e6f")
//	if err != nil {
//	    // Handle parse or nil-UUID error
//	}
//	fmt.Println(id) // Output: 7f9c24e5-2b1a-4f0e-9c3d-1a2b3c4d5e6f

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID format: %w", err)
	}
	return id, nil
}

func validateID(name string, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError(name + " cannot be empty")
	}
	return nil
}

// OrderID uniquely identifies an Order aggregate.
type OrderID struct {
	id uuid.UUID
}

// NewOrderID generates a fresh random OrderID.
func NewOrderID() OrderID {
	return OrderID{id: uuid.New()}
}

// OrderIDFrom wraps an existing UUID, rejecting the nil UUID.
func OrderIDFrom(value uuid.UUID) (OrderID, error) {
	if err := validateID("OrderID", value); err != nil {
		return OrderID{}, err
	}
	return OrderID{id: value}, nil
}

// OrderIDFromString parses an OrderID from its string representation.
func OrderIDFromString(s string) (OrderID, error) {
	id, err := parseID(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderIDFrom(id)
}

// Validate checks that the OrderID is not the nil sentinel.
func (i OrderID) Validate() error {
	return validateID("OrderID", i.id)
}

// UUID returns the underlying UUID value.
func (i OrderID) UUID() uuid.UUID {
	return i.id
}

// IsEqual compares two OrderIDs for equality.
func (i OrderID) IsEqual(other OrderID) bool {
	return i.id == other.id
}

// String returns the canonical string representation.
func (i OrderID) String() string {
	return i.id.String()
}

// OrderLineID uniquely identifies a line within its owning Order.
// The identity carries no meaning outside the aggregate.
type OrderLineID struct {
	id uuid.UUID
}

// NewOrderLineID generates a fresh random OrderLineID.
func NewOrderLineID() OrderLineID {
	return OrderLineID{id: uuid.New()}
}

// OrderLineIDFrom wraps an existing UUID, rejecting the nil UUID.
func OrderLineIDFrom(value uuid.UUID) (OrderLineID, error) {
	if err := validateID("OrderLineID", value); err != nil {
		return OrderLineID{}, err
	}
	return OrderLineID{id: value}, nil
}

// OrderLineIDFromString parses an OrderLineID from its string representation.
func OrderLineIDFromString(s string) (OrderLineID, error) {
	id, err := parseID(s)
	if err != nil {
		return OrderLineID{}, err
	}
	return OrderLineIDFrom(id)
}

// Validate checks that the OrderLineID is not the nil sentinel.
func (i OrderLineID) Validate() error {
	return validateID("OrderLineID", i.id)
}

// UUID returns the underlying UUID value.
func (i OrderLineID) UUID() uuid.UUID {
	return i.id
}

// IsEqual compares two OrderLineIDs for equality.
func (i OrderLineID) IsEqual(other OrderLineID) bool {
	return i.id == other.id
}

// String returns the canonical string representation.
func (i OrderLineID) String() string {
	return i.id.String()
}

// ProductID uniquely identifies a product referenced by an order line.
type ProductID struct {
	id uuid.UUID
}

// NewProductID generates a fresh random ProductID.
func NewProductID() ProductID {
	return ProductID{id: uuid.New()}
}

// ProductIDFrom wraps an existing UUID, rejecting the nil UUID.
func ProductIDFrom(value uuid.UUID) (ProductID, error) {
	if err := validateID("ProductID", value); err != nil {
		return ProductID{}, err
	}
	return ProductID{id: value}, nil
}

// ProductIDFromString parses a ProductID from its string representation.
func ProductIDFromString(s string) (ProductID, error) {
	id, err := parseID(s)
	if err != nil {
		return ProductID{}, err
	}
	return ProductIDFrom(id)
}

// Validate checks that the ProductID is not the nil sentinel.
func (i ProductID) Validate() error {
	return validateID("ProductID", i.id)
}

// UUID returns the underlying UUID value.
func (i ProductID) UUID() uuid.UUID {
	return i.id
}

// IsEqual compares two ProductIDs for equality.
func (i ProductID) IsEqual(other ProductID) bool {
	return i.id == other.id
}

// String returns the canonical string representation.
func (i ProductID) String() string {
	return i.id.String()
}

// CustomerID uniquely identifies a customer.
type CustomerID struct {
	id uuid.UUID
}

// NewCustomerID generates a fresh random CustomerID.
func NewCustomerID() CustomerID {
	return CustomerID{id: uuid.New()}
}

// CustomerIDFrom wraps an existing UUID, rejecting the nil UUID.
func CustomerIDFrom(value uuid.UUID) (CustomerID, error) {
	if err := validateID("CustomerID", value); err != nil {
		return CustomerID{}, err
	}
	return CustomerID{id: value}, nil
}

// CustomerIDFromString parses a CustomerID from its string representation.
func CustomerIDFromString(s string) (CustomerID, error) {
	id, err := parseID(s)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerIDFrom(id)
}

// Validate checks that the CustomerID is not the nil sentinel.
func (i CustomerID) Validate() error {
	return validateID("CustomerID", i.id)
}

// UUID returns the underlying UUID value.
func (i CustomerID) UUID() uuid.UUID {
	return i.id
}

// IsEqual compares two CustomerIDs for equality.
func (i CustomerID) IsEqual(other CustomerID) bool {
	return i.id == other.id
}

// String returns the canonical string representation.
func (i CustomerID) String() string {
	return i.id.String()
}
