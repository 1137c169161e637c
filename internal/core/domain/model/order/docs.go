// Package order provides the Order aggregate root and its supporting types
// for the sales order system. The aggregate is the single consistency
// boundary for an order: it owns the line collection, the running total,
// the shipping address and the status state machine, and is the sole
// mutation entry point for all of them.
//
// The package includes:
//   - Order: the aggregate root with lifecycle management
//   - OrderLine: a line entity that exists only inside its owning order
//   - Status: a state machine enforcing valid order status transitions
//   - Domain events: immutable facts recorded by successful mutations
//   - Specifications: composable business predicates over an order
//
// Key business rules:
//   - Lines and the total may only change while the order is in Draft status
//   - The total always equals the fold of all line totals in the order currency
//   - Status follows Draft -> Submitted -> Paid -> Shipped, with Cancelled
//     reachable from any non-shipped status
//   - Every successful mutation appends exactly one domain event; the list is
//     cleared in bulk by the consumer, never item by item
package order
