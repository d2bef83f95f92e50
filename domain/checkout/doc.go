// Package checkout holds the order aggregate: the Order root, its OrderItems,
// the factory building both from plain props and the services placing and
// summing orders.
//
// Order and OrderItem validate on construction and on every change; a change
// that would break an invariant leaves the value untouched and returns an error.
package checkout
