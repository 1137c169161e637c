package order

import (
	"salesorder/internal/core/domain/model/kernel"
)

// ReadyToShipSpecification is satisfied by a paid order with at least one line.
type ReadyToShipSpecification struct{}

// NewReadyToShipSpecification creates the ready-to-ship predicate.
func NewReadyToShipSpecification() ReadyToShipSpecification {
	return ReadyToShipSpecification{}
}

// IsSatisfiedBy implements kernel.Specification.
func (ReadyToShipSpecification) IsSatisfiedBy(o *Order) bool {
	return o.Status() == StatusPaid && len(o.Lines()) > 0
}

// HighValueSpecification is satisfied by an order whose total amount is at
// least the configured threshold. The comparison is on amounts only.
type HighValueSpecification struct {
	threshold kernel.Money
}

// NewHighValueSpecification creates a high-value predicate with the given threshold.
func NewHighValueSpecification(threshold kernel.Money) (HighValueSpecification, error) {
	if err := threshold.Validate(); err != nil {
		return HighValueSpecification{}, err
	}
	return HighValueSpecification{threshold: threshold}, nil
}

// IsSatisfiedBy implements kernel.Specification.
func (s HighValueSpecification) IsSatisfiedBy(o *Order) bool {
	return o.TotalAmount().Amount().GreaterThanOrEqual(s.threshold.Amount())
}

// Compile-time checks that both predicates satisfy the generic specification
// contract and therefore compose with kernel.And, kernel.Or and kernel.Not.
var (
	_ kernel.Specification[*Order] = ReadyToShipSpecification{}
	_ kernel.Specification[*Order] = HighValueSpecification{}
)
