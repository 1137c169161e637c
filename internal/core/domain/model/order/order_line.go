package order

import (
	"errors"
	"strings"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine instance was not
// created through the aggregate. This ensures lines never bypass validation.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via Order.AddLine or RestoreOrderLine")

// OrderLine is the entity representing one product entry inside an order.
// It belongs to the Order aggregate: external callers cannot construct one
// directly and can only modify it through the aggregate root's operations.
// Its identity is meaningful only within the owning Order.
type OrderLine struct {
	id          kernel.OrderLineID
	productID   kernel.ProductID
	productName string
	quantity    kernel.Quantity
	unitPrice   kernel.Money

	isConstructed bool
}

// newOrderLine creates a line for the aggregate. Validates that the product
// name is non-empty and that quantity and unit price were properly constructed.
func newOrderLine(
	id kernel.OrderLineID,
	productID kernel.ProductID,
	productName string,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
) (*OrderLine, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, errs.NewDomainRuleError("product name is required")
	}

	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		quantity.Validate(),
		unitPrice.Validate(),
	); err != nil {
		return nil, err
	}

	return &OrderLine{
		id:            id,
		productID:     productID,
		productName:   productName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// RestoreOrderLine reconstructs a persisted line with its original identity.
// Intended for persistence adapters only; it applies the same validation as
// the aggregate does when lines are first added.
func RestoreOrderLine(
	id kernel.OrderLineID,
	productID kernel.ProductID,
	productName string,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
) (*OrderLine, error) {
	return newOrderLine(id, productID, productName, quantity, unitPrice)
}

// Validate ensures the line was created through the aggregate.
func (l *OrderLine) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrOrderLineIsNotConstructed
	}
	return nil
}

// ID returns the line's identity within its owning order.
func (l *OrderLine) ID() kernel.OrderLineID {
	return l.id
}

// ProductID returns the referenced product's identifier.
func (l *OrderLine) ProductID() kernel.ProductID {
	return l.productID
}

// ProductName returns the display name captured when the line was added.
func (l *OrderLine) ProductName() string {
	return l.productName
}

// Quantity returns the current unit count of the line.
func (l *OrderLine) Quantity() kernel.Quantity {
	return l.quantity
}

// UnitPrice returns the price of a single unit.
func (l *OrderLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total derives the line total as unitPrice multiplied by the quantity.
// The value is recomputed on every call and never cached.
func (l *OrderLine) Total() (kernel.Money, error) {
	return l.unitPrice.MultiplyInt(l.quantity.Value())
}

// IsEqual compares two lines by their identity within the aggregate.
func (l *OrderLine) IsEqual(other *OrderLine) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// increaseQuantity replaces the line's quantity with quantity + extra.
// Only the aggregate calls this, from AddLine's merge path.
func (l *OrderLine) increaseQuantity(extra kernel.Quantity) {
	l.quantity = l.quantity.Add(extra)
}
