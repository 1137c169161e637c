// Package kernel provides core domain primitives for the sales order system.
// It implements the fundamental building blocks, following Domain-Driven Design
// principles, that are used throughout the domain model.
//
// The package includes:
//   - Currency and Money: exact decimal monetary amounts bound to one currency
//   - Quantity: a strictly positive unit count
//   - Email and Address: normalized, validated contact value objects
//   - OrderID, OrderLineID, ProductID, CustomerID: type-distinct identifiers
//     that cannot be assigned across identifier domains
//   - Specification: a generic composable predicate with And/Or/Not combinators
//
// All value objects are immutable and freely shareable across concurrent
// readers. The zero value of each type is invalid; instances must be created
// through the provided constructor functions, which enforce the validation
// rules and normalization of the domain.
package kernel
