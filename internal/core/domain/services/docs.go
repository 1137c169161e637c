// Package services provides domain services that read across multiple
// aggregates. It holds business logic that does not naturally belong to a
// single aggregate root, such as discount calculation over an order and
// the purchase history of its customer.
//
// Domain services here are read-only: they never mutate the aggregates
// they are given.
package services
