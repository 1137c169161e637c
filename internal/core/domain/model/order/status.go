package order

import (
	"fmt"

	"salesorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with one-directional transitions:
//
//	Draft ──> Submitted ──> Paid ──> Shipped
//	  │           │           │
//	  └───────────┴───────────┴──> Cancelled
//
// Draft is the initial state; Shipped and Cancelled are terminal.
// Transition methods return the new status or a domain rule violation,
// leaving classification of the failure to the caller.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status. Lines and the total may only be
	// modified while the order is a draft.
	StatusDraft

	// StatusSubmitted means the order was handed over for processing.
	StatusSubmitted

	// StatusPaid means payment for the order has been confirmed.
	StatusPaid

	// StatusShipped means the order has left the warehouse. Terminal.
	StatusShipped

	// StatusCancelled means the order was abandoned before shipping. Terminal.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusDraft:     "Draft",
		StatusSubmitted: "Submitted",
		StatusPaid:      "Paid",
		StatusShipped:   "Shipped",
		StatusCancelled: "Cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may legitimately hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:     "Draft",
		StatusSubmitted: "Submitted",
		StatusPaid:      "Paid",
		StatusShipped:   "Shipped",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks if the Status value is one an order may hold.
// Used when reconstructing orders from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsRequiredErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateModify checks whether lines and the total may be changed in this
// status. Only Draft orders are modifiable.
func (s Status) ValidateModify() error {
	if s != StatusDraft {
		return errs.NewDomainRuleError(
			fmt.Sprintf("cannot modify order in %s status", s))
	}
	return nil
}

// Submit transitions the status to Submitted.
// Only a Draft order can be submitted.
func (s Status) Submit() (Status, error) {
	if err := s.ValidateModify(); err != nil {
		return StatusUnknown, err
	}
	return StatusSubmitted, nil
}

// Pay transitions the status to Paid.
// Only a Submitted order can be marked as paid.
func (s Status) Pay() (Status, error) {
	if s != StatusSubmitted {
		return StatusUnknown, errs.NewDomainRuleError("only submitted orders can be marked as paid")
	}
	return StatusPaid, nil
}

// Ship transitions the status to Shipped.
// Only a Paid order can be shipped. Shipped is terminal.
func (s Status) Ship() (Status, error) {
	if s != StatusPaid {
		return StatusUnknown, errs.NewDomainRuleError("only paid orders can be shipped")
	}
	return StatusShipped, nil
}

// Cancel transitions the status to Cancelled.
// Every non-shipped status may be cancelled; a shipped order may not.
func (s Status) Cancel() (Status, error) {
	if s == StatusShipped {
		return StatusUnknown, errs.NewDomainRuleError("cannot cancel a shipped order")
	}
	return StatusCancelled, nil
}
