// Package customer holds the customer record the pricing service reads.
//
// A customer is identified by CustomerID and carries a normalized contact
// email plus the historical purchase total used for loyalty discounts. The
// record is read-only from the order lifecycle's point of view: orders
// reference customers by email and never mutate customer state.
package customer
