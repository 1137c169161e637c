package order

import (
	"time"

	"salesorder/internal/core/domain/model/kernel"
)

// DomainEvent is an immutable record of a fact that occurred due to a
// successful Order mutation. Events accumulate on the owning order in
// insertion order until the consumer clears them in bulk; they are never
// mutated after creation and never removed individually.
type DomainEvent interface {
	// EventName returns the stable name of the event kind.
	EventName() string

	// OccurredAt returns the UTC timestamp the fact was recorded.
	OccurredAt() time.Time
}

// eventBase carries the occurrence timestamp shared by all events.
type eventBase struct {
	occurredAt time.Time
}

func newEventBase() eventBase {
	return eventBase{occurredAt: time.Now().UTC()}
}

func (e eventBase) OccurredAt() time.Time {
	return e.occurredAt
}

// CreatedEvent records that a new order was created in Draft status.
type CreatedEvent struct {
	eventBase
	OrderID       kernel.OrderID
	CustomerEmail kernel.Email
}

func newCreatedEvent(orderID kernel.OrderID, customerEmail kernel.Email) CreatedEvent {
	return CreatedEvent{
		eventBase:     newEventBase(),
		OrderID:       orderID,
		CustomerEmail: customerEmail,
	}
}

// EventName implements DomainEvent.
func (e CreatedEvent) EventName() string { return "OrderCreated" }

// SubmittedEvent records that an order was submitted for processing,
// together with its total and line count at submission time.
type SubmittedEvent struct {
	eventBase
	OrderID   kernel.OrderID
	Total     kernel.Money
	LineCount int
}

func newSubmittedEvent(orderID kernel.OrderID, total kernel.Money, lineCount int) SubmittedEvent {
	return SubmittedEvent{
		eventBase: newEventBase(),
		OrderID:   orderID,
		Total:     total,
		LineCount: lineCount,
	}
}

// EventName implements DomainEvent.
func (e SubmittedEvent) EventName() string { return "OrderSubmitted" }

// PaidEvent records that payment for an order was confirmed.
type PaidEvent struct {
	eventBase
	OrderID          kernel.OrderID
	PaymentReference string
}

func newPaidEvent(orderID kernel.OrderID, paymentReference string) PaidEvent {
	return PaidEvent{
		eventBase:        newEventBase(),
		OrderID:          orderID,
		PaymentReference: paymentReference,
	}
}

// EventName implements DomainEvent.
func (e PaidEvent) EventName() string { return "OrderPaid" }

// ShippedEvent records that an order left the warehouse.
type ShippedEvent struct {
	eventBase
	OrderID        kernel.OrderID
	TrackingNumber string
	ShippedAt      time.Time
}

func newShippedEvent(orderID kernel.OrderID, trackingNumber string) ShippedEvent {
	base := newEventBase()
	return ShippedEvent{
		eventBase:      base,
		OrderID:        orderID,
		TrackingNumber: trackingNumber,
		ShippedAt:      base.occurredAt,
	}
}

// EventName implements DomainEvent.
func (e ShippedEvent) EventName() string { return "OrderShipped" }

// CancelledEvent records that an order was cancelled, with the given reason.
type CancelledEvent struct {
	eventBase
	OrderID kernel.OrderID
	Reason  string
}

func newCancelledEvent(orderID kernel.OrderID, reason string) CancelledEvent {
	return CancelledEvent{
		eventBase: newEventBase(),
		OrderID:   orderID,
		Reason:    reason,
	}
}

// EventName implements DomainEvent.
func (e CancelledEvent) EventName() string { return "OrderCancelled" }
