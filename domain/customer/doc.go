// Package customer contains the Customer aggregate of the shop example:
// the Customer entity, the Address value object, its domain events and stock handlers,
// the factory that assigns identities and the repository port.
//
// A Customer notifies its event dispatcher when it is created and whenever its address changes.
// Without an explicit dispatcher it uses DefaultEventDispatcher, which prints to stdout.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package customer
