package kernel

import (
	"strconv"

	"salesorder/internal/pkg/errs"
	"salesorder/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed indicates that a Quantity was not created through
// NewQuantity. Returned when validating a zero-value Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"quantity must be created via NewQuantity constructor")

// Quantity is a value object representing a strictly positive count of units.
// Quantities never decrease: the only operation is Add, which returns a new
// Quantity and never mutates in place.
type Quantity struct {
	value int
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity. The value must be greater than zero.
func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, errs.NewDomainRuleError("quantity must be positive")
	}
	return Quantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Quantity was created through NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the unit count.
func (q Quantity) Value() int {
	return q.value
}

// Add returns a new Quantity summing both values.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{
		value: q.value + other.value,
		guard: guard.NewConstructorGuard(),
	}
}

// IsEqual reports structural equality on the value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// String returns the decimal representation of the count.
func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}
