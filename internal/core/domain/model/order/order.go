package order

import (
	"errors"
	"strings"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// homeCurrency is the currency every order total is folded into. Line prices
// must match it; AddLine rejects a differing currency up front rather than
// letting the fold fail later.
const homeCurrency = kernel.CurrencyGBP

// Order is the aggregate root for a sales order. It owns the line collection,
// the running total, the shipping address and the status state machine, and
// records every externally observable mutation as an immutable domain event.
//
// Order maintains these invariants:
//   - totalAmount always equals the sum of all line totals in the order currency
//   - lines and the total change only while the order is in Draft status
//   - status transitions are monotonic and one-directional
//   - each successful mutation appends exactly one domain event
//
// All fields are private; every mutation passes through the aggregate's
// operations, which validate before they mutate. No operation partially
// mutates state before failing.
type Order struct {
	id              kernel.OrderID
	customerEmail   kernel.Email
	shippingAddress kernel.Address
	status          Status
	lines           []*OrderLine
	totalAmount     kernel.Money
	events          []DomainEvent

	isConstructed bool
}

// NewOrder creates a new order for the given customer email and shipping
// address. The order starts in Draft status with no lines and a zero total,
// and records an OrderCreated event.
//
// Parameters:
//   - customerEmail: The buyer's email (must be a constructed Email)
//   - shippingAddress: Where the order ships to (must be a constructed Address)
//
// Returns:
//   - *Order: A draft order ready to accept lines
//   - error: Validation error if either value object is unconstructed
//
// Example:
//
//	ord, err := order.NewOrder(email, address)
//	if err != nil {
//	    // Handle validation error
//	}
//	_ = ord.AddLine(productID, "Widget", quantity, unitPrice)
//	_ = ord.Submit() // Draft -> Submitted once at least one line exists
func NewOrder(customerEmail kernel.Email, shippingAddress kernel.Address) (*Order, error) {
	if err := errors.Join(
		customerEmail.Validate(),
		shippingAddress.Validate(),
	); err != nil {
		return nil, err
	}

	zero, err := kernel.NewMoneyZero(homeCurrency)
	if err != nil {
		return nil, err
	}

	o := &Order{
		id:              kernel.NewOrderID(),
		customerEmail:   customerEmail,
		shippingAddress: shippingAddress,
		status:          StatusDraft,
		totalAmount:     zero,
		isConstructed:   true,
	}

	o.recordEvent(newCreatedEvent(o.id, customerEmail))
	return o, nil
}

// RestoreOrder reconstructs a persisted order with its original identity,
// status and lines. The total is recomputed from the lines; no event is
// recorded. Intended for persistence adapters only.
func RestoreOrder(
	id kernel.OrderID,
	customerEmail kernel.Email,
	shippingAddress kernel.Address,
	status Status,
	lines []*OrderLine,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerEmail.Validate(),
		shippingAddress.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:              id,
		customerEmail:   customerEmail,
		shippingAddress: shippingAddress,
		status:          status,
		lines:           lines,
		isConstructed:   true,
	}

	if err := o.recalculateTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerEmail returns the customer's normalized email address.
func (o *Order) CustomerEmail() kernel.Email {
	return o.customerEmail
}

// ShippingAddress returns the order's shipping address.
func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total, always equal to the sum of all line
// totals in the order currency.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Lines returns a read-only view of the order's lines in insertion order.
func (o *Order) Lines() []*OrderLine {
	lines := make([]*OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// DomainEvents returns the events recorded since the last clear, in
// insertion order.
func (o *Order) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents discards all recorded events. Called by the consumer
// after it has processed the batch.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// AddLine adds a product line to the order. If a line for the product already
// exists its quantity is increased instead of creating a duplicate line. The
// total is recomputed afterwards. The order must be in Draft status and the
// unit price must be in the order's currency.
func (o *Order) AddLine(
	productID kernel.ProductID,
	productName string,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
) error {
	if err := o.ensureCanModify(); err != nil {
		return err
	}

	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if unitPrice.Currency() != o.totalAmount.Currency() {
		return errs.NewDomainRuleError(
			"line price in " + unitPrice.Currency().String() +
				" does not match order currency " + o.totalAmount.Currency().String())
	}

	if existing := o.findLine(productID); existing != nil {
		if err := quantity.Validate(); err != nil {
			return err
		}
		existing.increaseQuantity(quantity)
		return o.recalculateTotal()
	}

	line, err := newOrderLine(kernel.NewOrderLineID(), productID, productName, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.lines = append(o.lines, line)
	return o.recalculateTotal()
}

// RemoveLine removes the line for the given product and recomputes the total.
// The order must be in Draft status and the product must be present.
func (o *Order) RemoveLine(productID kernel.ProductID) error {
	if err := o.ensureCanModify(); err != nil {
		return err
	}

	for i, line := range o.lines {
		if line.ProductID().IsEqual(productID) {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return o.recalculateTotal()
		}
	}

	return errs.NewDomainRuleError("product not found in order")
}

// Submit hands the order over for processing. The order must be a Draft with
// at least one line and a total of at least 1.00 in the order currency.
// Records an OrderSubmitted event carrying the total and line count.
func (o *Order) Submit() error {
	if err := o.ensureCanModify(); err != nil {
		return err
	}

	if len(o.lines) == 0 {
		return errs.NewDomainRuleError("cannot submit an empty order")
	}

	minimum, err := kernel.NewMoney(decimal.NewFromInt(1), o.totalAmount.Currency())
	if err != nil {
		return err
	}
	enough, err := o.totalAmount.GreaterThanOrEqual(minimum)
	if err != nil {
		return err
	}
	if !enough {
		return errs.NewDomainRuleError("order total must be at least 1")
	}

	newStatus, err := o.status.Submit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordEvent(newSubmittedEvent(o.id, o.totalAmount, len(o.lines)))
	return nil
}

// MarkAsPaid confirms payment with the given reference.
// Only a Submitted order can be marked as paid.
func (o *Order) MarkAsPaid(paymentReference string) error {
	if strings.TrimSpace(paymentReference) == "" {
		return errs.NewDomainRuleError("payment reference is required")
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordEvent(newPaidEvent(o.id, paymentReference))
	return nil
}

// Ship marks the order as shipped with the given tracking number.
// Only a Paid order can be shipped.
func (o *Order) Ship(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewDomainRuleError("tracking number is required")
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordEvent(newShippedEvent(o.id, trackingNumber))
	return nil
}

// Cancel abandons the order with the given reason.
// A shipped order cannot be cancelled.
func (o *Order) Cancel(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewDomainRuleError("cancellation reason is required")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.recordEvent(newCancelledEvent(o.id, reason))
	return nil
}

func (o *Order) ensureCanModify() error {
	return o.status.ValidateModify()
}

func (o *Order) findLine(productID kernel.ProductID) *OrderLine {
	for _, line := range o.lines {
		if line.ProductID().IsEqual(productID) {
			return line
		}
	}
	return nil
}

// recalculateTotal rebuilds the total from scratch as the fold of all line
// totals starting from zero in the order currency.
func (o *Order) recalculateTotal() error {
	total, err := kernel.NewMoneyZero(homeCurrency)
	if err != nil {
		return err
	}

	for _, line := range o.lines {
		lineTotal, totalErr := line.Total()
		if totalErr != nil {
			return totalErr
		}
		total, totalErr = total.Add(lineTotal)
		if totalErr != nil {
			return totalErr
		}
	}

	o.totalAmount = total
	return nil
}

func (o *Order) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}
